package handlers

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/windwords/windwords/pkg/model"
)

var denominationRe = func() *regexp.Regexp {
	names := make([]string, len(model.Denominations))
	copy(names, model.Denominations)
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	for i, name := range names {
		names[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(names, "|"))
}()

// ResolveDenominationFromText returns the denomination with the most
// matches in the text, or "". Ties go to the denomination seen first.
func ResolveDenominationFromText(text string) string {
	counts := make(map[string]int)
	var order []string
	for _, match := range denominationRe.FindAllString(text, -1) {
		match = strings.ToLower(match)
		if counts[match] == 0 {
			order = append(order, match)
		}
		counts[match]++
	}

	best := ""
	for _, match := range order {
		if best == "" || counts[match] > counts[best] {
			best = match
		}
	}
	if best == "" {
		return ""
	}
	for _, name := range model.Denominations {
		if strings.EqualFold(name, best) {
			return name
		}
	}
	return ""
}

// ResolveDenominationFromWebsite fetches a church's website and scans
// its visible text for denomination matches.
func ResolveDenominationFromWebsite(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("handlers: GET %s: unexpected status %s", url, resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("handlers: failed to parse %s: %w", url, err)
	}
	return ResolveDenominationFromText(pageText(doc)), nil
}

// pageText collects the visible text of a parsed page, script and
// style content excluded.
func pageText(doc *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				builder.WriteString(text)
				builder.WriteString(" ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return builder.String()
}
