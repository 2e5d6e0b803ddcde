package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lexfmt/lexfmt/internal/ast"
	"github.com/lexfmt/lexfmt/internal/theme"
)

// maxGradientDepth caps the depth used for color interpolation: levels this
// deep or deeper all take the gradient's end color rather than
// extrapolating past it.
const maxGradientDepth = 8

// Treeviz renders the snapshot tree as a box-drawing diagram. Node type
// names take a depth-interpolated color between the theme's gradient
// endpoints; labels and ranges use the theme's label and muted colors.
// When color is false the diagram renders unstyled.
func Treeviz(doc *ast.Document, color bool) string {
	var b strings.Builder
	tv := treeviz{color: color, theme: theme.Current()}
	tv.write(&b, ast.SnapshotDocument(doc), "", "", 0)

	return b.String()
}

type treeviz struct {
	color bool
	theme *theme.Theme
}

func (tv *treeviz) write(
	b *strings.Builder,
	snap ast.AstSnapshot,
	prefix string,
	branch string,
	depth int,
) {
	b.WriteString(tv.styled(prefix+branch, tv.theme.Branch))
	b.WriteString(tv.styled(snap.NodeType, tv.depthColor(depth)))
	if snap.Label != "" {
		b.WriteString(" ")
		b.WriteString(tv.styled(excerpt(snap.Label), tv.theme.Label))
	}
	for _, key := range sortedAttrKeys(snap.Attributes) {
		if key == "range" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(tv.styled(
			key+"="+snap.Attributes[key],
			tv.theme.Attribute,
		))
	}
	if rng, ok := snap.Attributes["range"]; ok {
		b.WriteString(" ")
		b.WriteString(tv.styled("("+rng+")", tv.theme.Muted))
	}
	b.WriteString("\n")

	childPrefix := prefix
	switch branch {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}

	for i, child := range snap.Children {
		childBranch := "├── "
		if i == len(snap.Children)-1 {
			childBranch = "└── "
		}
		tv.write(b, child, childPrefix, childBranch, depth+1)
	}
}

func (tv *treeviz) styled(text string, color lipgloss.Color) string {
	if !tv.color {
		return text
	}

	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// depthColor interpolates between the theme's gradient endpoints in Luv
// space, one step per tree level.
func (tv *treeviz) depthColor(depth int) lipgloss.Color {
	if depth > maxGradientDepth {
		depth = maxGradientDepth
	}

	start, err1 := colorful.Hex(ansiToHex(tv.theme.GradientStart))
	end, err2 := colorful.Hex(ansiToHex(tv.theme.GradientEnd))
	if err1 != nil || err2 != nil {
		return tv.theme.NodeType
	}

	t := float64(depth) / float64(maxGradientDepth)
	blended := start.BlendLuv(end, t)

	return lipgloss.Color(blended.Hex())
}

// excerpt shortens long labels for the one-line-per-node diagram.
func excerpt(label string) string {
	const max = 48
	label = strings.ReplaceAll(label, "\n", " ")
	if len(label) <= max {
		return label
	}

	return label[:max-1] + "…"
}

// ansiToHex maps the ANSI 256 palette entries the themes use to hex
// values so they can be blended. Unknown codes fall back to mid gray.
func ansiToHex(c lipgloss.Color) string {
	if hex, ok := ansiHex[string(c)]; ok {
		return hex
	}
	if strings.HasPrefix(string(c), "#") {
		return string(c)
	}

	return "#808080"
}

var ansiHex = map[string]string{
	"33":  "#0087ff",
	"55":  "#5f00af",
	"99":  "#875fff",
	"125": "#af005f",
	"141": "#af87ff",
	"197": "#ff005f",
	"205": "#ff5faf",
	"213": "#ff87ff",
}

// Summary renders a one-line parse summary used by the watch command.
func Summary(doc *ast.Document) string {
	counts := map[string]int{}
	ast.Walk(doc.Root, func(item ast.ContentItem) bool {
		counts[item.NodeType()]++

		return true
	})

	parts := make([]string, 0, len(counts))
	for _, nodeType := range []string{
		ast.NodeSession,
		ast.NodeParagraph,
		ast.NodeList,
		ast.NodeDefinition,
		ast.NodeAnnotation,
		ast.NodeVerbatim,
	} {
		if n := counts[nodeType]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(nodeType)))
		}
	}
	if len(parts) == 0 {
		return "empty document"
	}

	return strings.Join(parts, ", ")
}
