package trifont

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/osuushi/trifont/fontsrc"
	"github.com/osuushi/trifont/internal"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/sfnt/glyph"
)

// Font holds a mesh for every code point the font maps, in em units.
type Font struct {
	Glyphs map[rune]Glyph
	// Ascent - descent + line gap
	CellHeight float32
	// Glyphs that are in Glyphs without a mesh because triangulation failed,
	// ordered by code point.
	Failures []*GlyphError
}

// Glyph is one character. Mesh is nil for glyphs without an outline, such as
// the space, and for glyphs that could not be triangulated. Code points that
// map to the same glyph share one Mesh, which must not be modified.
type Glyph struct {
	Advance float32
	Mesh    *Mesh
}

// GlyphError records a glyph whose outline could not be triangulated.
type GlyphError struct {
	Rune    rune
	GlyphID glyph.ID
	Err     error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyph %d (%q): %v", e.GlyphID, e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}

func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.Glyphs[r]
	return g, ok
}

func (f *Font) Len() int {
	return len(f.Glyphs)
}

// ReadFile reads and triangulates a TrueType or OpenType font file.
func ReadFile(path string, opts ...Option) (*Font, error) {
	o := newOptions(opts)
	face, err := fontsrc.Open(path, o.outliner)
	if err != nil {
		return nil, err
	}
	return assemble(context.Background(), face, o)
}

func Read(r io.Reader, opts ...Option) (*Font, error) {
	return ReadContext(context.Background(), r, opts...)
}

// ReadContext reads and triangulates a font. A font that can't be parsed, has
// no Unicode character map, or has an outline that can't be decoded is an
// error. A glyph that can't be triangulated is not: it is kept without a mesh
// and listed in Font.Failures. Cancelling ctx stops the read.
func ReadContext(ctx context.Context, r io.Reader, opts ...Option) (*Font, error) {
	o := newOptions(opts)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading font")
	}
	face, err := fontsrc.Parse(data, o.outliner)
	if err != nil {
		return nil, err
	}
	return assemble(ctx, face, o)
}

// What assembly needs from a parsed font, in design units.
type glyphSource interface {
	UnitsPerEm() float64
	CellHeight() float64
	IsCFF() bool
	Runes() []fontsrc.Mapping
	Advance(gid glyph.ID) float64
	Outline(gid glyph.ID, b fontsrc.OutlineBuilder) error
}

type glyphResult struct {
	glyph Glyph
	err   error
}

// Every distinct glyph is built once, by a bounded pool of workers that each
// write only their own slot. The map is filled afterwards on this goroutine.
func assemble(ctx context.Context, src glyphSource, o *options) (*Font, error) {
	start := time.Now()
	log := o.logger
	scale := src.UnitsPerEm()
	if scale <= 0 {
		return nil, errors.Errorf("invalid units per em %g", scale)
	}
	winding := internal.NegativeFill
	if src.IsCFF() {
		winding = internal.PositiveFill
	}

	mappings := filterRunes(src.Runes(), o.runes)
	slots := make(map[glyph.ID]int, len(mappings))
	var ids []glyph.ID
	for _, m := range mappings {
		if _, ok := slots[m.GlyphID]; !ok {
			slots[m.GlyphID] = len(ids)
			ids = append(ids, m.GlyphID)
		}
	}
	log.Debug("triangulating glyphs",
		"runes", len(mappings),
		"glyphs", len(ids),
		"winding", winding,
		"workers", o.workers,
	)

	results := make([]glyphResult, len(ids))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(o.workers)
	for i, gid := range ids {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := buildGlyph(src, gid, winding, scale, o)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	font := &Font{
		Glyphs:     make(map[rune]Glyph, len(mappings)),
		CellHeight: float32(src.CellHeight() / scale),
	}
	meshes := 0
	for _, m := range mappings {
		result := results[slots[m.GlyphID]]
		font.Glyphs[m.Rune] = result.glyph
		if result.glyph.Mesh != nil {
			meshes++
		}
		if result.err != nil {
			log.Warn("glyph could not be triangulated",
				"rune", string(m.Rune),
				"glyph", m.GlyphID,
				"error", result.err,
			)
			font.Failures = append(font.Failures, &GlyphError{Rune: m.Rune, GlyphID: m.GlyphID, Err: result.err})
		}
	}
	sort.Slice(font.Failures, func(i, j int) bool {
		return font.Failures[i].Rune < font.Failures[j].Rune
	})

	log.Info("read font",
		"glyphs", font.Len(),
		"meshes", meshes,
		"failures", len(font.Failures),
		"elapsed", time.Since(start),
	)
	return font, nil
}

// Runs one glyph through the whole pipeline. A returned error aborts the font;
// a triangulation failure, including a broken pipeline invariant, only marks
// this glyph as failed.
func buildGlyph(src glyphSource, gid glyph.ID, winding internal.Winding, scale float64, o *options) (result glyphResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result.glyph.Mesh = nil
			result.err = internal.HandleTriangulatePanicRecover(r)
		}
	}()

	log := o.logger.With(slog.Uint64("glyph", uint64(gid)))
	collector := internal.NewCollector(winding, log)
	collector.CubicTolerance = o.cubicTolerance
	if err := src.Outline(gid, collector); err != nil {
		return result, errors.Wrapf(err, "decoding glyph %d", gid)
	}
	result.glyph.Advance = float32(src.Advance(gid) / scale)

	outline := collector.Finish()
	if outline == nil {
		return result, nil
	}
	mesh, err := internal.BuildMesh(outline, scale, log)
	if err != nil {
		result.err = err
		return result, nil
	}
	if outline.DroppedHoles > 0 {
		log.Debug("dropped holes", "count", outline.DroppedHoles)
	}
	if mesh.Triangles() > 0 {
		result.glyph.Mesh = mesh
	}
	return result, nil
}

func filterRunes(mappings []fontsrc.Mapping, runes []rune) []fontsrc.Mapping {
	if len(runes) == 0 {
		return mappings
	}
	wanted := make(map[rune]bool, len(runes))
	for _, r := range runes {
		wanted[r] = true
	}
	filtered := make([]fontsrc.Mapping, 0, len(runes))
	for _, m := range mappings {
		if wanted[m.Rune] {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
