package render

import (
	"html"
	"regexp"
	"strings"
)

// Theme mode constants.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// defaultPrimary is the accent color used when a theme supplies none.
const defaultPrimary = "#2563eb"

// Theme carries the presentation options a caller may attach to a document.
// It affects only the CSS variables the layout emits, never data content.
type Theme struct {
	Mode   string `json:"mode,omitempty"`
	Colors struct {
		Primary string `json:"primary,omitempty"`
	} `json:"colors,omitempty"`
}

// palette is the set of CSS color values derived from a theme mode.
type palette struct {
	Bg      string
	PageBg  string
	Text    string
	Muted   string
	Border  string
	Surface string
}

var (
	lightPalette = palette{
		Bg:      "#ffffff",
		PageBg:  "#f0f2f5",
		Text:    "#1a202c",
		Muted:   "#718096",
		Border:  "#e2e8f0",
		Surface: "#f7fafc",
	}
	darkPalette = palette{
		Bg:      "#1a1a2e",
		PageBg:  "#0f0f23",
		Text:    "#e2e8f0",
		Muted:   "#a0aec0",
		Border:  "#2d3748",
		Surface: "#16213e",
	}
)

// cssColorPattern accepts hex colors and simple color names or functions.
// Anything else is replaced with the default accent, which keeps the theme
// input from breaking out of the <style> block.
var cssColorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+|rgba?\([0-9.,\s%]+\)|hsla?\([0-9.,\s%]+\))$`)

// resolve returns the palette and accent color for a theme, applying
// defaults for nil or partial input.
func (t *Theme) resolve() (palette, string) {
	pal := lightPalette
	primary := defaultPrimary
	if t == nil {
		return pal, primary
	}
	if t.Mode == ModeDark {
		pal = darkPalette
	}
	if c := sanitizeColor(t.Colors.Primary); c != "" {
		primary = c
	}
	return pal, primary
}

// sanitizeColor validates a CSS color string, returning "" when the value
// cannot be used safely.
func sanitizeColor(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !cssColorPattern.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

// wrapPage wraps a rendered body fragment in a complete, self-contained HTML
// document: theme CSS variables, the embedded stylesheet, the non-printing
// print control, and the attribution footer. The fragment is treated as
// opaque markup; only the title is escaped here.
func wrapPage(title, body string, theme *Theme) string {
	pal, primary := theme.resolve()

	var b strings.Builder
	b.Grow(len(body) + len(pageStyle) + 2048)

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("  <title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString(" — DocKit</title>\n")
	b.WriteString("  <link rel=\"preconnect\" href=\"https://fonts.googleapis.com\">\n")
	b.WriteString("  <link href=\"https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap\" rel=\"stylesheet\">\n")
	b.WriteString("  <style>\n    :root {\n")
	b.WriteString("      --primary: " + primary + ";\n")
	b.WriteString("      --bg: " + pal.Bg + ";\n")
	b.WriteString("      --page-bg: " + pal.PageBg + ";\n")
	b.WriteString("      --text: " + pal.Text + ";\n")
	b.WriteString("      --muted: " + pal.Muted + ";\n")
	b.WriteString("      --border: " + pal.Border + ";\n")
	b.WriteString("      --surface: " + pal.Surface + ";\n")
	b.WriteString("    }\n")
	b.WriteString(pageStyle)
	b.WriteString("  </style>\n</head>\n<body>\n  <div class=\"page\">\n")
	b.WriteString(body)
	b.WriteString("\n  </div>\n")
	b.WriteString("  <div class=\"powered-by\">Generated by <a href=\"/\">DocKit</a></div>\n")
	b.WriteString("  <button class=\"print-btn\" onclick=\"window.print()\">\n")
	b.WriteString("    <svg width=\"16\" height=\"16\" fill=\"none\" stroke=\"currentColor\" stroke-width=\"2\" viewBox=\"0 0 24 24\"><path d=\"M6 9V2h12v7M6 18H4a2 2 0 01-2-2v-5a2 2 0 012-2h16a2 2 0 012 2v5a2 2 0 01-2 2h-2M6 14h12v8H6z\"/></svg>\n")
	b.WriteString("    Print / Save PDF\n  </button>\n</body>\n</html>")
	return b.String()
}

// pageStyle is the fixed document stylesheet. Theme-dependent values are
// consumed through the CSS variables emitted above it.
const pageStyle = `    *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

    body {
      font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
      color: var(--text);
      background: var(--page-bg);
      line-height: 1.6;
      -webkit-font-smoothing: antialiased;
    }

    .page {
      max-width: 820px;
      margin: 32px auto;
      background: var(--bg);
      padding: 64px 72px;
      box-shadow: 0 1px 3px rgba(0,0,0,0.08), 0 8px 32px rgba(0,0,0,0.06);
      border-radius: 8px;
      min-height: 1100px;
      position: relative;
    }

    .print-btn {
      position: fixed;
      bottom: 24px;
      right: 24px;
      background: var(--primary);
      color: white;
      border: none;
      padding: 12px 24px;
      border-radius: 8px;
      font-size: 14px;
      font-weight: 500;
      cursor: pointer;
      font-family: inherit;
      box-shadow: 0 2px 8px rgba(0,0,0,0.15);
      z-index: 100;
      display: flex;
      align-items: center;
      gap: 8px;
      transition: transform 0.15s, box-shadow 0.15s;
    }
    .print-btn:hover { transform: translateY(-1px); box-shadow: 0 4px 16px rgba(0,0,0,0.2); }

    .powered-by {
      text-align: center;
      padding: 16px;
      color: var(--muted);
      font-size: 12px;
    }
    .powered-by a { color: var(--primary); text-decoration: none; }

    /* Typography */
    h1 { font-size: 28px; font-weight: 700; margin-bottom: 8px; color: var(--text); }
    h2 { font-size: 20px; font-weight: 600; margin-top: 32px; margin-bottom: 12px; color: var(--text); }
    h3 { font-size: 16px; font-weight: 600; margin-top: 24px; margin-bottom: 8px; }
    p { margin-bottom: 12px; }

    /* Markdown content */
    .markdown-content h1 { font-size: 24px; margin-top: 32px; }
    .markdown-content h2 { font-size: 20px; }
    .markdown-content h3 { font-size: 16px; }
    .markdown-content ul, .markdown-content ol { padding-left: 24px; margin-bottom: 12px; }
    .markdown-content li { margin-bottom: 4px; }
    .markdown-content blockquote { border-left: 3px solid var(--primary); padding-left: 16px; color: var(--muted); margin: 16px 0; }
    .markdown-content code { background: var(--surface); padding: 2px 6px; border-radius: 4px; font-size: 0.9em; }
    .markdown-content pre { background: var(--surface); padding: 16px; border-radius: 8px; overflow-x: auto; margin: 16px 0; }
    .markdown-content pre code { background: none; padding: 0; }
    .markdown-content table { width: 100%; border-collapse: collapse; margin: 16px 0; }
    .markdown-content th, .markdown-content td { padding: 8px 12px; border: 1px solid var(--border); text-align: left; }
    .markdown-content th { background: var(--surface); font-weight: 600; }
    .markdown-content a { color: var(--primary); }

    /* Tables */
    table.data-table { width: 100%; border-collapse: collapse; margin: 16px 0; }
    .data-table th { text-align: left; padding: 10px 12px; border-bottom: 2px solid var(--border); font-weight: 600; font-size: 12px; text-transform: uppercase; letter-spacing: 0.05em; color: var(--muted); }
    .data-table td { padding: 10px 12px; border-bottom: 1px solid var(--border); }
    .data-table tr:last-child td { border-bottom: none; }
    .text-right { text-align: right; }
    .text-center { text-align: center; }
    .text-muted { color: var(--muted); }
    .text-small { font-size: 13px; }
    .text-primary { color: var(--primary); }
    .font-semibold { font-weight: 600; }
    .font-bold { font-weight: 700; }
    .mt-2 { margin-top: 8px; }
    .mt-4 { margin-top: 16px; }
    .mt-8 { margin-top: 32px; }
    .mt-12 { margin-top: 48px; }
    .mb-2 { margin-bottom: 8px; }
    .mb-4 { margin-bottom: 16px; }
    .mb-8 { margin-bottom: 32px; }
    .flex { display: flex; }
    .justify-between { justify-content: space-between; }
    .items-start { align-items: flex-start; }
    .items-end { align-items: flex-end; }
    .gap-4 { gap: 16px; }
    .border-top { border-top: 1px solid var(--border); padding-top: 16px; }
    .border-bottom { border-bottom: 1px solid var(--border); padding-bottom: 16px; }

    .header-bar { height: 4px; background: var(--primary); border-radius: 4px 4px 0 0; margin: -64px -72px 48px; }
    .badge { display: inline-block; padding: 2px 10px; border-radius: 12px; font-size: 12px; font-weight: 500; background: var(--surface); color: var(--primary); border: 1px solid var(--border); }
    .logo-img { max-height: 48px; max-width: 200px; }
    .section { margin-top: 32px; }
    .divider { border: none; border-top: 1px solid var(--border); margin: 24px 0; }

    /* Print styles */
    @media print {
      body { background: white; }
      .page { margin: 0; padding: 48px 56px; box-shadow: none; border-radius: 0; max-width: none; }
      .print-btn, .powered-by { display: none !important; }
      .header-bar { margin: -48px -56px 40px; print-color-adjust: exact; -webkit-print-color-adjust: exact; }
      @page { margin: 0.5in; size: A4; }
      h2, h3 { page-break-after: avoid; }
      table { page-break-inside: avoid; }
      .page-break { page-break-before: always; }
    }
`
