package mood

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
)

const (
	itemClass    = "mood-item"
	activeClass  = "active"
	playlistAttr = "data-playlist"
)

// ParseMarkup reads mood entries from an HTML document. Every element with the
// "mood-item" class is an entry: its text is the label, its data-playlist
// attribute the playlist reference, and an "active" class pre-marks it.
func ParseMarkup(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mood markup")
	}

	var entries []Entry
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			classes := strings.Fields(attr(n, "class"))
			if hasClass(classes, itemClass) {
				entries = append(entries, Entry{
					Label:    strings.TrimSpace(textContent(n)),
					Playlist: attr(n, playlistAttr),
					Active:   hasClass(classes, activeClass),
				})
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return entries, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(classes []string, name string) bool {
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return b.String()
}
