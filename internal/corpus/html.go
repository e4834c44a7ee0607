package corpus

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Page is the visible content of an HTML document
type Page struct {
	Title string
	Text  string // one line per block element
}

// blockTags end a passage so sentence splitting sees a line break
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "section": true, "article": true,
}

// cellTags separate their content from the next cell with a space
var cellTags = map[string]bool{"td": true, "th": true, "dt": true, "dd": true}

// ExtractHTML pulls the title and visible text out of an HTML document
func ExtractHTML(body io.Reader) (*Page, error) {
	tokenizer := html.NewTokenizer(body)
	page := &Page{}
	var textBuilder strings.Builder
	inScript := false
	inStyle := false
	inTitle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				page.Text = cleanText(textBuilder.String())
				return page, nil
			}
			return nil, tokenizer.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = tokenType == html.StartTagToken
			case "style":
				inStyle = tokenType == html.StartTagToken
			case "title":
				inTitle = tokenType == html.StartTagToken
			case "br":
				textBuilder.WriteString("\n")
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			case "title":
				inTitle = false
			}
			if blockTags[token.Data] {
				textBuilder.WriteString("\n")
			} else if cellTags[token.Data] {
				textBuilder.WriteString(" ")
			}

		case html.TextToken:
			data := tokenizer.Token().Data
			if inTitle {
				page.Title = strings.TrimSpace(data)
				continue
			}
			if !inScript && !inStyle {
				writeText(&textBuilder, data)
			}
		}
	}
}

// writeText appends a text node, keeping a single space only where the node
// itself had whitespace at that edge so inline markup does not split words
// from their punctuation.
func writeText(b *strings.Builder, data string) {
	text := strings.TrimSpace(data)
	if text == "" {
		if data != "" {
			b.WriteString(" ")
		}
		return
	}
	if text[0] != data[0] {
		b.WriteString(" ")
	}
	b.WriteString(text)
	if text[len(text)-1] != data[len(data)-1] {
		b.WriteString(" ")
	}
}

// cleanText collapses whitespace inside each line and drops blank lines
func cleanText(input string) string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
