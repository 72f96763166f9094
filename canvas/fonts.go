package canvas

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FallbackFamily names the embedded face used when a family cannot be found.
const FallbackFamily = "Go"

// FontError reports a font family that could not be loaded.
type FontError struct {
	Family string
	Err    error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("canvas: font %q: %v", e.Family, e.Err)
}

func (e *FontError) Unwrap() error { return e.Err }

// Fonts resolves font family names to loaded font sources.
//
// Families registered with Register win; otherwise the system font
// directories are scanned once (go-text fontscan) and matched by family
// name. Anything that cannot be resolved falls back to the embedded Go
// Regular face, so text always renders.
//
// Fonts is safe for concurrent use.
type Fonts struct {
	mu       sync.Mutex
	sources  map[string]*text.FontSource
	system   map[string]string
	scanned  bool
	fallback *text.FontSource
}

// NewFonts returns an empty resolver.
func NewFonts() *Fonts {
	return &Fonts{sources: make(map[string]*text.FontSource)}
}

var (
	defaultFonts     *Fonts
	defaultFontsOnce sync.Once
)

// DefaultFonts returns the process-wide resolver used by adapters that were
// not given one explicitly.
func DefaultFonts() *Fonts {
	defaultFontsOnce.Do(func() { defaultFonts = NewFonts() })
	return defaultFonts
}

// Register makes src available under family, overriding system lookup.
func (f *Fonts) Register(family string, src *text.FontSource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources[familyKey(family)] = src
}

// Source returns the font source for family, or the fallback face.
func (f *Fonts) Source(family string) *text.FontSource {
	key := familyKey(family)

	f.mu.Lock()
	defer f.mu.Unlock()

	if src, ok := f.sources[key]; ok {
		return src
	}
	if key != "" && key != familyKey(FallbackFamily) {
		src, err := f.loadSystem(key)
		if err == nil {
			f.sources[key] = src
			return src
		}
		Logger().Warn("canvas: font family unavailable, using fallback",
			"family", family, "fallback", FallbackFamily, "err", err)
	}
	src := f.fallbackSource()
	f.sources[key] = src
	return src
}

// loadSystem looks key up among the installed system fonts.
// Caller holds f.mu.
func (f *Fonts) loadSystem(key string) (*text.FontSource, error) {
	if !f.scanned {
		f.scanned = true
		f.system = scanSystemFonts()
	}
	path, ok := f.system[key]
	if !ok {
		return nil, &FontError{Family: key, Err: os.ErrNotExist}
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, &FontError{Family: key, Err: err}
	}
	Logger().Debug("canvas: resolved font family", "family", key, "file", path)
	return src, nil
}

// fallbackSource parses the embedded face once. Caller holds f.mu.
func (f *Fonts) fallbackSource() *text.FontSource {
	if f.fallback == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			// goregular.TTF is a known-good font compiled into the binary.
			panic(fmt.Sprintf("canvas: embedded fallback font: %v", err))
		}
		f.fallback = src
	}
	return f.fallback
}

// scanSystemFonts indexes the installed fonts by normalized family name.
func scanSystemFonts() map[string]string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	footprints, err := fontscan.SystemFonts(fontscanLogger{}, cacheDir)
	if err != nil {
		Logger().Warn("canvas: system font scan failed", "err", err)
		return map[string]string{}
	}
	index := indexFootprints(footprints)
	Logger().Debug("canvas: scanned system fonts", "families", len(index))
	return index
}

// indexFootprints maps each family to the file of its face closest to
// regular: upright, weight 400, normal width. Collections (.ttc) are
// skipped since FontSource loads the first face of a file.
func indexFootprints(footprints []fontscan.Footprint) map[string]string {
	index := make(map[string]string)
	best := make(map[string]float64)
	for _, fp := range footprints {
		file := fp.Location.File
		if strings.HasSuffix(strings.ToLower(file), ".ttc") || fp.Location.Index != 0 {
			continue
		}
		key := familyKey(fp.Family)
		d := regularDistance(fp.Aspect)
		if prev, seen := best[key]; seen && prev <= d {
			continue
		}
		best[key] = d
		index[key] = file
	}
	return index
}

// regularDistance scores how far a is from the regular face of its family.
// Slant outweighs any weight difference.
func regularDistance(a font.Aspect) float64 {
	d := math.Abs(float64(a.Weight-font.WeightNormal)) + 100*math.Abs(float64(a.Stretch-font.StretchNormal))
	if a.Style == font.StyleItalic {
		d += 1000
	}
	return d
}

// familyKey normalizes a family name the way fontscan stores it: lower
// case with spaces removed.
func familyKey(family string) string {
	return font.NormalizeFamily(strings.TrimSpace(family))
}

// fontscanLogger routes fontscan diagnostics to the package logger.
type fontscanLogger struct{}

func (fontscanLogger) Printf(format string, args ...interface{}) {
	Logger().Debug("canvas: fontscan: " + fmt.Sprintf(format, args...))
}
