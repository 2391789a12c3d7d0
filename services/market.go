package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"market-mood/models"
	"market-mood/scraper/finnhub"
	"market-mood/utils"
)

const (
	notAvailable      = "N/A"
	generationLayout  = "2006-01-02 15:04:05 MST"
	subtitleFetchFail = "Could not fetch market data."
	subtitleUnknown   = "Could not determine market status."
)

// QuoteSource is anything that can produce one quote for a fixed symbol.
type QuoteSource interface {
	Symbol() string
	FetchQuote(ctx context.Context) (*models.Quote, error)
}

// MarketService turns a single quote fetch into a MarketReport.
type MarketService struct {
	source    QuoteSource
	indexName string
	logger    *utils.Logger
	now       func() time.Time
}

// NewMarketService creates a MarketService reading from source.
func NewMarketService(source QuoteSource, indexName string, logger *utils.Logger) *MarketService {
	return &MarketService{
		source:    source,
		indexName: indexName,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the generation timestamp source.
func (s *MarketService) WithClock(now func() time.Time) *MarketService {
	s.now = now
	return s
}

// FetchReport fetches the quote and classifies it. It never fails: transport
// and decode problems produce a report with StatusClass "error" and the cause
// in ErrorMessage.
func (s *MarketService) FetchReport(ctx context.Context) *models.MarketReport {
	symbol := s.source.Symbol()
	s.logger.Info("[market] Fetching market data for index: %s", symbol)

	report := &models.MarketReport{
		IndexChangePercent: notAvailable,
		IndexCurrentPrice:  notAvailable,
		IndexSymbol:        symbol,
	}

	var mood Mood
	quote, err := s.source.FetchQuote(ctx)
	if err != nil {
		mood = s.failureMood(err)
		report.ErrorMessage = err.Error()
		s.failureLogger(err).Error("[market] %s", report.ErrorMessage)
	} else {
		change := decimal.Zero
		if quote.PercentChange.Valid {
			change = quote.PercentChange.Decimal
		} else {
			report.ErrorMessage = fmt.Sprintf("Could not retrieve percent change for %s.", symbol)
			s.logger.Warn("[market] Could not get daily percentage change ('dp') for %s. Treating as flat.", quote.Symbol)
		}

		report.IndexChangePercent = change.StringFixedBank(2) + "%"
		if quote.CurrentPrice.Valid {
			report.IndexCurrentPrice = quote.CurrentPrice.Decimal.StringFixedBank(2)
		}

		mood = Classify(change, s.indexName)
		s.logger.Info("[market] Data fetch complete: %s Change=%s -> %s", quote.Symbol, report.IndexChangePercent, mood.Class)
	}

	report.StatusText = mood.Text
	report.StatusClass = mood.Class
	report.StatusArrow = mood.Arrow
	report.Subtitle = mood.Subtitle
	report.EmbedSnippet = EmbedFor(mood.Class)
	report.GenerationTime = s.now().Format(generationLayout)

	return report
}

// failureLogger tags the log line with the failure kind and, for HTTP
// errors, the status code.
func (s *MarketService) failureLogger(err error) *utils.Logger {
	l := s.logger.WithField("error_kind", string(finnhub.KindOf(err)))
	var fe *finnhub.FetchError
	if errors.As(err, &fe) && fe.StatusCode != 0 {
		l = l.WithField("status_code", fe.StatusCode)
	}
	return l
}

func (s *MarketService) failureMood(err error) Mood {
	switch finnhub.KindOf(err) {
	case finnhub.KindDecode:
		return ErrorMood(subtitleUnknown)
	default:
		return ErrorMood(subtitleFetchFail)
	}
}
