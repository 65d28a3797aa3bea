package skins

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/dmitrymomot/invoicekit/pkg/logger"
	"github.com/dmitrymomot/invoicekit/pkg/template"
)

//go:embed all:data
var embedded embed.FS

// Skin is one loaded, pre-parsed template.
type Skin struct {
	Style       Style
	Kind        Kind
	Name        string
	Description string
	Body        *template.Template
	Subject     *template.Template // email skins only
}

// Resolution is the result of looking up a style by identifier. Fallback
// is true when the requested identifier was unknown, of the wrong kind or
// not provided by the loaded skin set, in which case Skin is the default
// for the kind.
type Resolution struct {
	Skin      *Skin
	Requested string
	Fallback  bool
}

// Registry maps styles to skins. It is read-only after New and safe for
// concurrent use.
type Registry struct {
	skins  map[Style]*Skin
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	fsys   fs.FS
	logger *slog.Logger
}

// WithFS loads skins from fsys instead of the embedded set. fsys must hold
// manifest.yaml at its root.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.fsys = fsys
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New loads and parses every skin declared in the manifest. Any template
// syntax error fails the whole load. The default document and email
// styles must be present.
func New(opts ...Option) (*Registry, error) {
	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	if o.fsys == nil {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, errors.Join(ErrFailedToReadSkin, err)
		}
		o.fsys = sub
	}

	raw, err := fs.ReadFile(o.fsys, ManifestFile)
	if err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}
	m, err := parseManifest(raw)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		skins:  make(map[Style]*Skin, len(m.Skins)),
		logger: o.logger.With(logger.Component("skins")),
	}
	for _, e := range m.Skins {
		skin, err := loadSkin(o.fsys, e)
		if err != nil {
			return nil, err
		}
		r.skins[skin.Style] = skin
	}

	for _, def := range []Style{DefaultDocument, DefaultEmail} {
		if _, ok := r.skins[def]; !ok {
			return nil, fmt.Errorf("%w: default %s style %q", ErrMissingSkin, def.Kind(), def)
		}
	}
	return r, nil
}

// MustNew is like New but panics on error. Intended for the embedded set.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func loadSkin(fsys fs.FS, e manifestEntry) (*Skin, error) {
	style, _ := ParseStyle(e.ID)

	src, err := fs.ReadFile(fsys, path.Clean(e.File))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFailedToReadSkin, e.File, err)
	}
	body, err := template.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFailedToParse, style, err)
	}

	skin := &Skin{
		Style:       style,
		Kind:        e.Kind,
		Name:        e.Name,
		Description: e.Description,
		Body:        body,
	}
	if e.Subject != "" {
		subject, err := template.Parse(e.Subject)
		if err != nil {
			return nil, fmt.Errorf("%w %q subject: %w", ErrFailedToParse, style, err)
		}
		skin.Subject = subject
	}
	if skin.Name == "" {
		skin.Name = string(style)
	}
	return skin, nil
}

// Get returns the skin for a known style, without fallback.
func (r *Registry) Get(style Style) (*Skin, error) {
	skin, ok := r.skins[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return skin, nil
}

// Document resolves a document style identifier. Empty or unknown ids
// resolve to DefaultDocument with Fallback set.
func (r *Registry) Document(id string) Resolution {
	return r.resolve(KindDocument, id)
}

// Email resolves an email style identifier. Empty or unknown ids resolve
// to DefaultEmail with Fallback set.
func (r *Registry) Email(id string) Resolution {
	return r.resolve(KindEmail, id)
}

func (r *Registry) resolve(kind Kind, id string) Resolution {
	if style, ok := ParseStyle(id); ok && style.Kind() == kind {
		if skin, ok := r.skins[style]; ok {
			return Resolution{Skin: skin, Requested: id}
		}
	}

	def := defaultFor(kind)
	if id != "" {
		r.logger.Debug("style not available, using default",
			logger.Style(id),
			slog.String("default", string(def)),
		)
	}
	return Resolution{Skin: r.skins[def], Requested: id, Fallback: true}
}

// Skins returns the loaded skins of kind in display order.
func (r *Registry) Skins(kind Kind) []*Skin {
	styles := DocumentStyles()
	if kind == KindEmail {
		styles = EmailStyles()
	}

	out := make([]*Skin, 0, len(styles))
	for _, s := range styles {
		if skin, ok := r.skins[s]; ok {
			out = append(out, skin)
		}
	}
	return out
}
