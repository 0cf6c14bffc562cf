package style

// knownParams is the set of low-level rendering option names the resolver
// accepts verbatim. A request key found here is a passthrough: it skips
// registry lookup and overrides anything a fragment derived.
//
// The list is the subset of the host renderer's option namespace that the
// built-in fragments touch, plus the options callers commonly override by
// hand. It deliberately excludes figure.widefigsize, which is registry-only
// intermediate data.
var knownParams = map[string]bool{}

func init() {
	for _, name := range []string{
		"axes.edgecolor",
		"axes.facecolor",
		"axes.grid",
		"axes.labelpad",
		"axes.labelsize",
		"axes.linewidth",
		"axes.prop_cycle",
		"axes.titlepad",
		"axes.titlesize",
		"contour.linewidth",
		"errorbar.capsize",
		"figure.dpi",
		"figure.facecolor",
		"figure.figsize",
		"font.family",
		"font.sans-serif",
		"font.serif",
		"font.size",
		"font.weight",
		"grid.alpha",
		"grid.color",
		"grid.linestyle",
		"grid.linewidth",
		"hatch.linewidth",
		"image.cmap",
		"image.interpolation",
		"legend.borderaxespad",
		"legend.borderpad",
		"legend.columnspacing",
		"legend.fontsize",
		"legend.frameon",
		"legend.handlelength",
		"legend.handletextpad",
		"legend.labelspacing",
		"legend.loc",
		"legend.numpoints",
		"legend.scatterpoints",
		"lines.dashed_pattern",
		"lines.linestyle",
		"lines.linewidth",
		"lines.marker",
		"lines.markeredgewidth",
		"lines.markersize",
		"mathtext.fontset",
		"patch.linewidth",
		"pdf.fonttype",
		"ps.fonttype",
		"savefig.bbox",
		"savefig.dpi",
		"savefig.format",
		"savefig.pad_inches",
		"savefig.transparent",
		"scatter.edgecolors",
		"text.color",
		"text.latex.preamble",
		"text.usetex",
		"xtick.direction",
		"xtick.labelsize",
		"xtick.major.pad",
		"xtick.major.size",
		"xtick.major.width",
		"xtick.minor.size",
		"xtick.minor.visible",
		"xtick.minor.width",
		"xtick.top",
		"ytick.direction",
		"ytick.labelsize",
		"ytick.major.pad",
		"ytick.major.size",
		"ytick.major.width",
		"ytick.minor.size",
		"ytick.minor.visible",
		"ytick.minor.width",
		"ytick.right",
	} {
		knownParams[name] = true
	}
}

// IsParam reports whether name is a recognized low-level option name.
func IsParam(name string) bool {
	return knownParams[name]
}
