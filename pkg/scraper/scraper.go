package scraper

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	fetchTimeout = 10 * time.Second
	maxRedirects = 5

	// Paragraphs at or below this length are treated as nav/ad boilerplate.
	minParagraphLength = 50
	maxTextLength      = 8000

	noContentSentinel = "No content could be extracted from this URL."
)

// contentSelectors locate the article's main text, tried in priority order.
var contentSelectors = []string{
	"article",
	"main",
	".content",
	".post",
	".entry",
	".article-content",
	"#content",
	`[role="main"]`,
}

// ExtractedContent is the article-level result of scraping one URL.
type ExtractedContent struct {
	Text     string
	ImageURL *string
	Title    *string
}

// FetchError carries a user-displayable reason for a failed extraction.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	return e.Reason
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Scraper struct {
	httpClient *http.Client
}

func New() *Scraper {
	return &Scraper{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Extract fetches a URL and heuristically derives the article body, title and
// hero image. Failures surface as *FetchError; a page with no recognizable
// content yields a sentinel text instead of an error.
func (s *Scraper) Extract(ctx context.Context, pageURL string) (*ExtractedContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{Reason: fmt.Sprintf("Failed to fetch URL: %v", err), Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &FetchError{Reason: "Page not found. Please check the URL."}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &FetchError{Reason: "Access denied. This site may block automated requests."}
	case resp.StatusCode >= 400:
		return nil, &FetchError{Reason: fmt.Sprintf("Failed to fetch URL: HTTP %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{Reason: "An unexpected error occurred while scraping the URL.", Err: err}
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	// Length limits count characters, not bytes.
	text := normalizeText(extractText(doc))
	if runes := []rune(text); len(runes) > maxTextLength {
		text = string(runes[:maxTextLength]) + "..."
	}
	if text == "" {
		text = noContentSentinel
	}

	return &ExtractedContent{
		Text:     text,
		ImageURL: extractImage(doc, base),
		Title:    extractTitle(doc),
	}, nil
}

func classifyTransportError(err error) *FetchError {
	var netErr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return &FetchError{Reason: "Could not connect to the server. Please check the URL.", Err: err}
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &FetchError{Reason: "Request timed out. The server took too long to respond.", Err: err}
	default:
		return &FetchError{Reason: fmt.Sprintf("Failed to fetch URL: %v", err), Err: err}
	}
}

func extractTitle(doc *goquery.Document) *string {
	candidates := []string{
		doc.Find(`meta[property="og:title"]`).AttrOr("content", ""),
		doc.Find("title").First().Text(),
		doc.Find("h1").First().Text(),
	}

	for _, candidate := range candidates {
		if title := strings.TrimSpace(candidate); title != "" {
			return &title
		}
	}
	return nil
}

func extractImage(doc *goquery.Document, base *url.URL) *string {
	src := doc.Find(`meta[property="og:image"]`).AttrOr("content", "")
	if src == "" {
		src = doc.Find(`meta[name="twitter:image"]`).AttrOr("content", "")
	}
	if src == "" {
		if area := findContentArea(doc); area != nil {
			src = largestImage(area)
		}
	}

	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}

	if resolved := resolveURL(base, src); resolved != "" {
		return &resolved
	}
	return nil
}

func findContentArea(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if area := doc.Find(selector); area.Length() > 0 {
			return area
		}
	}
	return nil
}

// largestImage picks the img with the biggest declared width x height area.
// Images without dimensions never win, matching a zero area.
func largestImage(area *goquery.Selection) string {
	var best string
	var bestSize int

	area.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr("src", "")
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}

		width, _ := strconv.Atoi(img.AttrOr("width", "0"))
		height, _ := strconv.Atoi(img.AttrOr("height", "0"))

		if size := width * height; size > bestSize {
			best = src
			bestSize = size
		}
	})
	return best
}

func resolveURL(base *url.URL, src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if base == nil {
		return ""
	}

	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func extractText(doc *goquery.Document) string {
	var paragraphs []string

	if area := findContentArea(doc); area != nil {
		paragraphs = collectParagraphs(area.Find("p"), nil)

		if len(paragraphs) == 0 {
			area.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, heading *goquery.Selection) {
				if text := strings.TrimSpace(heading.Text()); text != "" {
					paragraphs = append(paragraphs, text)
				}
			})
		}
	}

	// No content area matched: scan the whole document, skipping chrome.
	if len(paragraphs) == 0 {
		paragraphs = collectParagraphs(doc.Find("p"), func(p *goquery.Selection) bool {
			return p.Closest("nav, header, footer, aside").Length() == 0
		})
	}

	return strings.Join(paragraphs, "\n\n")
}

func collectParagraphs(sel *goquery.Selection, keep func(*goquery.Selection) bool) []string {
	var out []string
	sel.Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if utf8.RuneCountInString(text) <= minParagraphLength {
			return
		}
		if keep != nil && !keep(p) {
			return
		}
		out = append(out, text)
	})
	return out
}

var blankLineSplit = regexp.MustCompile(`\s*\n\s*\n\s*`)

// normalizeText keeps blank lines as paragraph separators and collapses every
// other whitespace run to a single space.
func normalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var paragraphs []string
	for _, part := range blankLineSplit.Split(text, -1) {
		if fields := strings.Fields(part); len(fields) > 0 {
			paragraphs = append(paragraphs, strings.Join(fields, " "))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
