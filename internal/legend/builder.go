package legend

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tverin/maplegend/internal/log"
)

// ErrDepthExceeded is returned when layer-group nesting exceeds the builder's
// depth limit. The layer model does not promise cycle-freedom for groups, so
// the limit bounds recursion instead of a visited set.
var ErrDepthExceeded = errors.New("legend: layer nesting exceeds depth limit")

// Section titles and the root label. Sections appear in this fixed order;
// a grouping with no layers contributes no section.
const (
	RootLabel         = "Map"
	SectionVariable   = "Variable"
	SectionStatic     = "Static"
	SectionBackground = "Background"
)

// DefaultMaxDepth bounds layer-group recursion.
const DefaultMaxDepth = 32

// Builder assembles legend trees. Each build is a stateless function of its
// inputs and the registry's current contents; concurrent builds only share
// the registry's read side.
type Builder struct {
	registry *FactoryRegistry
	previews PreviewProvider
	maxDepth int
	tracer   trace.Tracer
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithPreviewProvider sets the symbol preview collaborator. Without one,
// nodes carry no symbols.
func WithPreviewProvider(p PreviewProvider) BuilderOption {
	return func(b *Builder) { b.previews = p }
}

// WithMaxDepth overrides the layer-group recursion limit.
func WithMaxDepth(n int) BuilderOption {
	return func(b *Builder) { b.maxDepth = n }
}

// NewBuilder creates a builder over the given registry.
func NewBuilder(registry *FactoryRegistry, opts ...BuilderOption) *Builder {
	b := &Builder{
		registry: registry,
		maxDepth: DefaultMaxDepth,
		tracer:   otel.Tracer("maplegend/legend"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the builder's factory registry.
func (b *Builder) Registry() *FactoryRegistry { return b.registry }

// CreateRoot builds the legend tree for a map: a synthetic root labeled
// "Map" with one section child per non-empty layer grouping, in the fixed
// order Variable, Static, Background.
func (b *Builder) CreateRoot(ctx context.Context, st Style, m Map) (*Node, error) {
	ctx, span := b.tracer.Start(ctx, "legend.build")
	defer span.End()

	root := NewNode(RootLabel)
	root.Font = st.HeaderFont
	root.Brush = st.Foreground
	root.Padding = st.Padding

	groupings := []struct {
		title string
		coll  Collection
	}{
		{SectionVariable, m.VariableLayers()},
		{SectionStatic, m.Layers()},
		{SectionBackground, m.BackgroundLayers()},
	}

	for _, g := range groupings {
		if g.coll == nil || g.coll.Len() == 0 {
			continue
		}
		section, err := b.CreateSection(ctx, st, g.title, g.coll)
		if err != nil {
			return nil, fmt.Errorf("building %s section: %w", g.title, err)
		}
		root.AddChild(section)
	}

	span.SetAttributes(
		attribute.Int("legend.sections", len(root.Children)),
		attribute.Int("legend.nodes", root.Count()),
	)
	log.Debug(log.CatLegend, "built legend tree",
		"sections", len(root.Children), "nodes", root.Count())
	return root, nil
}

// CreateSection builds one section node with the given title. The collection
// is visited in reverse index order (last element first) so the legend reads
// top-to-bottom in the map's visible stacking order; children are appended in
// that visitation order.
func (b *Builder) CreateSection(ctx context.Context, st Style, title string, coll Collection) (*Node, error) {
	section := NewNode(title)
	section.Font = st.HeaderFont
	section.Brush = st.Foreground
	section.Padding = st.Padding

	for i := coll.Len() - 1; i >= 0; i-- {
		child, err := b.CreateLeaf(ctx, st, coll.At(i))
		if err != nil {
			return nil, err
		}
		section.AddChild(child)
	}
	return section, nil
}

// CreateLeaf builds the node for one layer. A factory resolved for the
// layer's type builds the node entirely; when none is registered the generic
// fallback node is built instead. A nil layer type propagates ErrNilType.
func (b *Builder) CreateLeaf(ctx context.Context, st Style, layer Layer) (*Node, error) {
	ctx, err := descend(ctx, b.maxDepth)
	if err != nil {
		return nil, err
	}

	factory, err := b.registry.Resolve(layer.Type())
	switch {
	case err == nil:
		return factory.Create(ctx, b, st, layer)
	case errors.Is(err, ErrNoFactory):
		log.Debug(log.CatLegend, "no factory, using generic item",
			"layer", layer.DisplayName(), "type", layer.Type().Key())
		return b.genericItem(st, layer), nil
	default:
		return nil, err
	}
}

// genericItem builds the fallback node from a layer's generic attributes:
// display name, enabled flag, and a delegated symbol preview.
func (b *Builder) genericItem(st Style, layer Layer) *Node {
	n := NewNode(layer.DisplayName())
	n.Font = st.ItemFont
	n.Brush = st.Foreground
	n.Indent = st.Indent
	n.Padding = st.Padding
	n.Excluded = !layer.Enabled()
	n.Symbol = b.PreviewFor(st, layer)
	return n
}

// PreviewFor asks the preview collaborator for a symbol at the style's
// configured size. Returns nil when no provider is set, the size is empty,
// or the provider cannot render the layer.
func (b *Builder) PreviewFor(st Style, layer Layer) Symbol {
	if b.previews == nil || st.SymbolSize.IsZero() {
		return nil
	}
	return b.previews.Preview(layer, st.SymbolSize.Width, st.SymbolSize.Height)
}

// depthKey carries the current build depth so factories that recurse back
// into the builder stay inside the limit.
type depthKey struct{}

func descend(ctx context.Context, limit int) (context.Context, error) {
	depth, _ := ctx.Value(depthKey{}).(int)
	if depth >= limit {
		return ctx, fmt.Errorf("%w (%d)", ErrDepthExceeded, limit)
	}
	return context.WithValue(ctx, depthKey{}, depth+1), nil
}
