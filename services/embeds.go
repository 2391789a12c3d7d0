package services

import (
	"html/template"
	"strconv"

	"market-mood/models"
)

// giphyEmbed builds the responsive GIPHY iframe markup. paddingPct sets the
// aspect ratio of the wrapper.
func giphyEmbed(id string, paddingPct int, pageSlug string) template.HTML {
	return template.HTML(`<div style="width:100%;height:0;padding-bottom:` + strconv.Itoa(paddingPct) + `%;position:relative;">` +
		`<iframe src="https://giphy.com/embed/` + id + `" width="100%" height="100%" style="position:absolute" frameBorder="0" class="giphy-embed" allowFullScreen></iframe>` +
		`</div><p><a href="https://giphy.com/gifs/` + pageSlug + `">via GIPHY</a></p>`)
}

var embedTable = map[models.StatusClass]template.HTML{
	models.StatusCrash:    giphyEmbed("1rNWZu4QQqCUaq434T", 56, "this-is-fine-dumpster-fire-floating-1rNWZu4QQqCUaq434T"),
	models.StatusBleeding: giphyEmbed("3IMr40UId6417vSWZ6", 50, "a24-lamb-3IMr40UId6417vSWZ6"),
	models.StatusWobbly:   giphyEmbed("NTur7XlVDUdqM", 100, "this-is-fine-dog-ntur7xldudqm"),
	models.StatusRally:    giphyEmbed("d8SRR4aDUINuU", 100, "nooooo-d8SRR4aDUINuU"),
	models.StatusClimbing: giphyEmbed("NEvPzZ8bd1V4Y", 75, "reactionseditor-yes-nice-nevpzz8bd1v4y"),
	models.StatusSideways: giphyEmbed("l1J3VHwlmsc9vsmju", 56, "masterchef-fox-season-8-l1J3VHwlmsc9vsmju"),
	models.StatusError:    giphyEmbed("JliGmPEIgzGLe", 56, "computer-computers-problems-JliGmPEIgzGLe"),
}

// defaultEmbed is served for any class missing from embedTable.
var defaultEmbed = giphyEmbed("l0HlHFRbmaZtBRhXG", 100, "reactionseditor-shrug-l0hlhfrbmaztbrhxg")

// EmbedFor returns the decorative embed for class. It never returns "".
func EmbedFor(class models.StatusClass) template.HTML {
	if snippet, ok := embedTable[class]; ok && snippet != "" {
		return snippet
	}
	return defaultEmbed
}
