// Command overlaydemo renders an overlay recipe to an image file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/overlay"
)

func main() {
	var (
		recipe = flag.String("recipe", "meme", "recipe: caption, meme, motivate, locket, sobel, canny")
		text   = flag.String("text", "WHEN THE BUILD IS GREEN", "overlay text")
		width  = flag.Int("width", 900, "canvas width")
		height = flag.Int("height", 300, "canvas height (meme, locket)")
		size   = flag.Int("size", 48, "text size (motivate)")
		input  = flag.String("input", "", "input image (sobel, canny)")
		font   = flag.String("font", "", "TrueType/OpenType file registered as the meme and caption font")
		output = flag.String("output", "overlay.png", "output file")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		overlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []overlay.Option
	if *font != "" {
		data, err := os.ReadFile(*font)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		opts = append(opts,
			overlay.WithFont("Custom", data),
			overlay.WithRecipeFonts(overlay.RecipeMeme, "Custom", overlay.FamilyEmoji, "Go Bold"),
			overlay.WithRecipeFonts(overlay.RecipeCaption, "Custom", overlay.FamilyEmoji, "Go Bold"),
		)
	}
	if err := overlay.Init(opts...); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	buf, err := render(*recipe, *text, *width, *height, *size, *input)
	if err != nil {
		log.Fatalf("Failed to render %s: %v", *recipe, err)
	}
	defer buf.Release()

	out, err := buf.Encode(filepath.Ext(*output))
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s saved to %s (%dx%d)\n", *recipe, *output, buf.Width(), buf.Height())
}

func render(recipe, text string, width, height, size int, input string) (*overlay.Buffer, error) {
	switch recipe {
	case "caption":
		return overlay.CaptionHeader(width, text)
	case "motivate":
		return overlay.MotivateText(width, text, size, true)
	case "locket":
		return overlay.LocketText(width, height, text)
	case "sobel", "canny":
		return edges(recipe, input)
	default:
		return overlay.MemeText(width, height, text)
	}
}

// edges decodes input to raw RGBA and runs an edge filter on it.
func edges(recipe, input string) (*overlay.Buffer, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	// Gravity to the image's own size decodes it to raw RGBA.
	rgba, err := overlay.Gravity(data, 1, 1)
	if err != nil {
		return nil, err
	}
	defer rgba.Release()

	if recipe == "sobel" {
		return overlay.Sobel(rgba.Bytes(), rgba.Width(), rgba.Height(), rgba.Channels())
	}
	return overlay.Canny(rgba.Bytes(), rgba.Width(), rgba.Height(), rgba.Channels())
}
