package models

import (
	"html/template"

	"github.com/shopspring/decimal"
)

// StatusClass is the stable key of a mood category. It drives page styling
// and the embed lookup, so it is always one of the constants below.
type StatusClass string

const (
	StatusCrash    StatusClass = "yes"
	StatusBleeding StatusClass = "bleeding"
	StatusWobbly   StatusClass = "wobbly"
	StatusRally    StatusClass = "no"
	StatusClimbing StatusClass = "climbing"
	StatusSideways StatusClass = "sideways"
	StatusError    StatusClass = "error"
)

// AllStatusClasses returns every category in classification order, error last.
func AllStatusClasses() []StatusClass {
	return []StatusClass{
		StatusCrash, StatusBleeding, StatusWobbly,
		StatusRally, StatusClimbing, StatusSideways,
		StatusError,
	}
}

// Valid reports whether c is a known category.
func (c StatusClass) Valid() bool {
	for _, known := range AllStatusClasses() {
		if c == known {
			return true
		}
	}
	return false
}

// Quote holds the values decoded from the quote endpoint. Fields the API
// omitted (or sent as null) have Valid == false.
type Quote struct {
	Symbol        string
	CurrentPrice  decimal.NullDecimal
	PercentChange decimal.NullDecimal
}

// MarketReport is the result of one fetch, consumed by the page renderer.
type MarketReport struct {
	StatusText         string
	StatusClass        StatusClass
	StatusArrow        string
	Subtitle           string
	EmbedSnippet       template.HTML
	IndexChangePercent string
	IndexCurrentPrice  string
	IndexSymbol        string
	GenerationTime     string
	ErrorMessage       string
}

// TemplateData returns the variables exposed to the page template. The keys
// are the contract with the externally owned template file.
func (r *MarketReport) TemplateData() map[string]any {
	return map[string]any{
		"status_text":          r.StatusText,
		"status_class":         string(r.StatusClass),
		"status_arrow":         r.StatusArrow,
		"subtitle":             r.Subtitle,
		"embed_snippet":        r.EmbedSnippet,
		"index_change_percent": r.IndexChangePercent,
		"index_current_price":  r.IndexCurrentPrice,
		"index_symbol":         r.IndexSymbol,
		"generation_time":      r.GenerationTime,
		"error_message":        r.ErrorMessage,
	}
}
