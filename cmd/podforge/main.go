// podforge — Print-on-demand design generation.
//
// Usage:
//
//	podforge text "DREAM BIG" [--font anton] [--layout stacked] [options]
//	podforge pattern [--style circles] [--palette neon] [options]
//	podforge niche --theme motivational [--text "..."] [options]
//	podforge batch --config batch.json
//	podforge fonts
//	podforge products
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/podforge/podforge/pkg/design"
	"github.com/podforge/podforge/pkg/fonts"
	"github.com/podforge/podforge/pkg/generate"
	"github.com/podforge/podforge/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "text":
		err = runText(os.Args[2:])
	case "pattern":
		err = runPattern(os.Args[2:])
	case "niche":
		err = runNiche(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "fonts":
		err = runFonts(os.Args[2:])
	case "products":
		runProducts()
	case "help", "-h", "--help":
		printUsage()
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}
	if err != nil {
		fatal(err)
	}
}

// common holds the flags every generation subcommand shares.
type common struct {
	products string
	output   string
	fontsDir string
	filename string
	verbose  bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.products, "products", "", "Comma-separated products (tshirt,sticker,poster)")
	fs.StringVar(&c.products, "p", "", "Comma-separated products (shorthand)")
	fs.StringVar(&c.output, "out", "output", "Output directory")
	fs.StringVar(&c.fontsDir, "fonts-dir", "fonts", "Fonts directory")
	fs.StringVar(&c.filename, "filename", "", "Output filename (without extension)")
	fs.BoolVar(&c.verbose, "v", false, "Verbose debug logging to stderr")
}

func (c *common) setup() (generate.Runner, *fonts.Manager, error) {
	if c.verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	products, err := parseProducts(c.products)
	if err != nil {
		return generate.Runner{}, nil, err
	}
	runner := generate.Runner{Products: products, OutputDir: c.output}
	return runner, fonts.NewManager(c.fontsDir), nil
}

func runText(args []string) error {
	fs := flag.NewFlagSet("text", flag.ExitOnError)
	var c common
	c.register(fs)
	fontName := fs.String("font", "anton", "Font name (e.g. anton, pacifico, bebas, goregular)")
	colors := fs.String("colors", "", "Color shortcut (e.g. white-on-black, neon-on-dark)")
	palette := fs.String("palette", "", "Color palette name")
	layoutName := fs.String("layout", "centered", "Layout: centered, stacked, arced")
	noShadow := fs.Bool("no-shadow", false, "Disable drop shadow")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("text is required: podforge text \"YOUR TEXT\" [options]")
	}
	text := strings.ReplaceAll(fs.Arg(0), `\n`, "\n")

	lay, err := design.ParseLayout(*layoutName)
	if err != nil {
		return err
	}

	runner, fm, err := c.setup()
	if err != nil {
		return err
	}

	gen := &generate.TextGenerator{
		Text:     text,
		FontName: *fontName,
		ColorArg: *colors,
		Palette:  *palette,
		Layout:   lay,
		Shadow:   !*noShadow,
		Fonts:    fm,
	}

	filename := c.filename
	if filename == "" {
		filename = generate.Slug(text, 40)
	}

	fmt.Printf("Generating text design: %q\n", text)
	saved, err := runner.GenerateAndSave(gen, filename)
	if err != nil {
		return err
	}

	return saveMetaAndReport(saved, generate.MetadataInput{Text: text, DesignType: "text"})
}

func runPattern(args []string) error {
	fs := flag.NewFlagSet("pattern", flag.ExitOnError)
	var c common
	c.register(fs)
	style := fs.String("style", "geometric", "Pattern style: "+strings.Join(generate.PatternStyles, ", "))
	palette := fs.String("palette", "neon", "Color palette (warm/cool/neon/pastel/earth)")
	seed := fs.Int64("seed", 0, "Random seed for reproducibility")
	colors := fs.String("colors", "", "Color shortcut for background")
	if err := fs.Parse(args); err != nil {
		return err
	}

	runner, _, err := c.setup()
	if err != nil {
		return err
	}

	gen := &generate.PatternGenerator{
		Style:    *style,
		Palette:  *palette,
		ColorArg: *colors,
		Seed:     *seed,
	}

	filename := c.filename
	if filename == "" {
		filename = "pattern_" + *style
		if *seed != 0 {
			filename = fmt.Sprintf("%s_s%d", filename, *seed)
		}
	}

	fmt.Printf("Generating pattern: %s (palette: %s)\n", *style, *palette)
	saved, err := runner.GenerateAndSave(gen, filename)
	if err != nil {
		return err
	}

	return saveMetaAndReport(saved, generate.MetadataInput{
		Text:       *style + " pattern",
		DesignType: "pattern",
		Style:      *style,
	})
}

func runNiche(args []string) error {
	fs := flag.NewFlagSet("niche", flag.ExitOnError)
	var c common
	c.register(fs)
	theme := fs.String("theme", "", "Theme name (e.g. motivational, funny, profession, hobby)")
	text := fs.String("text", "", "Custom text (otherwise random from theme)")
	themeDir := fs.String("themes-dir", "", "Custom theme directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *theme == "" {
		return fmt.Errorf("--theme is required: available: %s", strings.Join(generate.ListThemes(*themeDir), ", "))
	}

	runner, fm, err := c.setup()
	if err != nil {
		return err
	}

	t, err := generate.LoadTheme(*themeDir, *theme)
	if err != nil {
		return err
	}

	customText := strings.ReplaceAll(*text, `\n`, "\n")
	gen := &generate.NicheGenerator{Theme: t, Text: customText, Fonts: fm}

	filename := c.filename
	if filename == "" {
		filename = "niche_" + *theme
		if customText != "" {
			filename += "_" + generate.Slug(customText, 30)
		}
	}

	textForMeta := customText
	if textForMeta == "" {
		textForMeta = *theme
	}

	fmt.Printf("Generating niche design: theme=%s\n", *theme)
	saved, err := runner.GenerateAndSave(gen, filename)
	if err != nil {
		return err
	}

	return saveMetaAndReport(saved, generate.MetadataInput{
		Text:       textForMeta,
		DesignType: "niche",
		Theme:      *theme,
		ExtraTags:  t.Tags,
	})
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	var c common
	c.register(fs)
	config := fs.String("config", "", "Path to batch config JSON")
	themeDir := fs.String("themes-dir", "", "Custom theme directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *config == "" {
		return fmt.Errorf("--config is required for batch")
	}

	_, fm, err := c.setup()
	if err != nil {
		return err
	}

	fmt.Printf("Running batch from: %s\n", *config)
	paths, err := generate.RunBatch(*config, generate.BatchOptions{
		OutputDir: c.output,
		ThemeDir:  *themeDir,
		Fonts:     fm,
	})
	if err != nil {
		return err
	}

	images, metas := 0, 0
	for _, p := range paths {
		if strings.HasSuffix(p, ".png") {
			images++
		} else {
			metas++
		}
	}
	fmt.Printf("\nDone! %d image(s) and %d metadata file(s) generated.\n", images, metas)
	return nil
}

func runFonts(args []string) error {
	fs := flag.NewFlagSet("fonts", flag.ExitOnError)
	fontsDir := fs.String("fonts-dir", "fonts", "Fonts directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fm := fonts.NewManager(*fontsDir)
	fmt.Println("Available fonts:")
	for _, name := range fm.ListAvailable() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("\nCategories:")
	for _, cat := range fonts.CategoryNames() {
		fmt.Printf("  %-8s %s\n", cat+":", strings.Join(fonts.Categories[cat], ", "))
	}
	return nil
}

func runProducts() {
	fmt.Println("Products:")
	for _, name := range design.ProductNames() {
		p := design.Products[name]
		mode := "opaque"
		if p.Transparent {
			mode = "transparent"
		}
		fmt.Printf("  %-8s %dx%d px, %s, safe zone %dx%d\n",
			name, p.Width, p.Height, mode, p.SafeWidth(), p.SafeHeight())
	}
}

// saveMetaAndReport writes metadata sidecars for saved images and prints
// the resulting paths.
func saveMetaAndReport(saved []string, in generate.MetadataInput) error {
	meta := generate.GenerateMetadata(in)
	for _, path := range saved {
		metaPath, err := generate.SaveMetadata(meta, path)
		if err != nil {
			return err
		}
		fmt.Printf("  Saved: %s\n", path)
		fmt.Printf("  Meta:  %s\n", metaPath)
	}
	fmt.Printf("\nDone! %d design(s) generated.\n", len(saved))
	return nil
}

func parseProducts(val string) ([]string, error) {
	if val == "" {
		return nil, nil
	}
	var names []string
	for _, p := range strings.Split(val, ",") {
		name := strings.ToLower(strings.TrimSpace(p))
		if _, ok := design.Products[name]; !ok {
			return nil, fmt.Errorf("unknown product %q: available: %s",
				name, strings.Join(design.ProductNames(), ", "))
		}
		names = append(names, name)
	}
	return names, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`podforge — Print-on-Demand Design Generator

USAGE:
    podforge text "YOUR TEXT" [options]
    podforge pattern [options]
    podforge niche --theme <name> [options]
    podforge batch --config <path>
    podforge fonts [--fonts-dir <dir>]
    podforge products

TEXT:
    --font <name>          Font shortname or stem (default: anton)
    --colors <shortcut>    e.g. white-on-black, neon-on-dark, gold-on-black
    --palette <name>       warm, cool, neon, pastel, earth
    --layout <name>        centered, stacked, arced (default: centered)
    --no-shadow            Disable drop shadow

PATTERN:
    --style <name>         geometric, circles, triangles, grid, tessellation, gradient
    --palette <name>       Color palette (default: neon)
    --seed <n>             Random seed for reproducibility

NICHE:
    --theme <name>         motivational, funny, profession, hobby
    --text "..."           Custom text (otherwise random phrase)
    --themes-dir <dir>     Custom theme JSON directory

COMMON:
    -p, --products <list>  Comma-separated: tshirt,sticker,poster (default: tshirt)
    --out <dir>            Output directory (default: output)
    --fonts-dir <dir>      Fonts directory (default: fonts)
    --filename <name>      Output filename without extension
    -v                     Verbose debug logging

EXAMPLES:
    podforge text "DREAM BIG" --font anton --colors white-on-black --layout stacked
    podforge text "ARC TEXT" --layout arced -p tshirt,sticker
    podforge pattern --style tessellation --palette cool --seed 42
    podforge niche --theme motivational
    podforge batch --config designs.json
`)
}
