// Package editor holds the state of one document-editing session: the loaded
// document, the placed fields and the signing link generated from them.
package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/pdfdoc"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/placement"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/signclient"
)

const DefaultLoadTimeout = 30 * time.Second

// LinkIssuer is implemented by *signclient.Client
type LinkIssuer interface {
	GenerateLink(ctx context.Context, doc signclient.Document, fields []model.Field) (*signclient.Link, error)
}

// Deliverer is implemented by *signclient.Client
type Deliverer interface {
	SaveToFiles(ctx context.Context, r signclient.SaveRequest) error
}

// Config : editing session settings supplied by the hosting application
type Config struct {
	// Renderer parses documents; configured once by the host before any load.
	Renderer    pdfdoc.Renderer
	LoadTimeout time.Duration
	// Zoom converts PDF points to rendered pixels when no Geometry is given.
	Zoom     float64
	Geometry placement.GeometryProvider
	// AfterFunc replaces time.AfterFunc for the load timeout guard.
	AfterFunc AfterFunc
}

type Session struct {
	mu sync.Mutex

	geometry placement.GeometryProvider
	cfg      Config
	loader   *Loader

	fileName string
	document []byte

	tool     model.FieldType
	fields   []model.Field
	nextID   int
	previews map[string]string
	revision uint64

	link      *signclient.Link
	linkError string
	busy      bool
}

func NewSession(cfg Config) *Session {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = DefaultLoadTimeout
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}
	return &Session{
		cfg:      cfg,
		loader:   NewLoader(cfg.LoadTimeout, cfg.AfterFunc),
		previews: make(map[string]string),
	}
}

// LoadDocument selects a new file, clears everything derived from the previous
// one and renders it. It returns once the load settles (ready, errored, or
// superseded) or ctx is done.
func (s *Session) LoadDocument(ctx context.Context, fileName string, data []byte) LoadStatus {
	s.mu.Lock()
	s.fileName = fileName
	s.document = data
	s.fields = nil
	s.previews = make(map[string]string)
	s.link = nil
	s.linkError = ""
	s.geometry = nil
	s.revision++
	gen := s.loader.Select()
	s.mu.Unlock()

	settled := s.loader.Settled(gen)

	if s.cfg.Renderer == nil {
		s.loader.Fail(gen, fmt.Errorf("PDF worker is not configured"))
		return s.loader.Status()
	}

	renderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		info, err := s.cfg.Renderer.Render(renderCtx, data)
		if err != nil {
			s.loader.Fail(gen, err)
			return
		}
		s.loader.Succeed(gen, info)
	}()

	select {
	case <-settled:
	case <-ctx.Done():
		s.loader.Fail(gen, ctx.Err())
	}
	return s.loader.Status()
}

// ClearDocument discards the document and everything placed on it
func (s *Session) ClearDocument() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileName = ""
	s.document = nil
	s.fields = nil
	s.previews = make(map[string]string)
	s.link = nil
	s.linkError = ""
	s.geometry = nil
	s.revision++
	s.loader.Reset()
}

func (s *Session) LoadStatus() LoadStatus {
	return s.loader.Status()
}

// SelectTool sets the field type placed by PlaceWithActiveTool.
// An empty type clears the selection.
func (s *Session) SelectTool(t model.FieldType) bool {
	if t != "" && !t.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool = t
	return true
}

func (s *Session) ActiveTool() model.FieldType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// PlaceWithActiveTool places a field of the selected type; no tool, no field
func (s *Session) PlaceWithActiveTool(page int, click placement.Point) (model.Field, bool) {
	s.mu.Lock()
	tool := s.tool
	s.mu.Unlock()

	if tool == "" {
		return model.Field{}, false
	}
	return s.AddField(tool, page, click)
}

// AddField places a new field centred on click. Nothing is placed when the
// document is not ready or the page has not been measured.
func (s *Session) AddField(t model.FieldType, page int, click placement.Point) (model.Field, bool) {
	size, ok := placement.DefaultSize(t)
	if !ok {
		return model.Field{}, false
	}

	status := s.loader.Status()
	if status.State != StateReady || status.Info == nil || page < 1 || page > status.Info.PageCount() {
		return model.Field{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rect, ok := s.geometryLocked(status.Info).PageRect(page)
	if !ok {
		return model.Field{}, false
	}
	ratio, ok := placement.PlaceField(click, rect, size)
	if !ok {
		return model.Field{}, false
	}

	s.nextID++
	field := model.Field{
		ID:     fmt.Sprintf("field-%d", s.nextID),
		Type:   t,
		Page:   page,
		XRatio: ratio.X,
		YRatio: ratio.Y,
		Width:  size.Width,
		Height: size.Height,
	}
	s.fields = append(s.fields, field)
	s.invalidateLinkLocked()

	return field, true
}

// RemoveField deletes a field and its transient preview value
func (s *Session) RemoveField(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.fields {
		if f.ID == id {
			s.fields = append(s.fields[:i:i], s.fields[i+1:]...)
			delete(s.previews, id)
			s.invalidateLinkLocked()
			return true
		}
	}
	return false
}

// SetTextValue stores a preview value for an existing field
func (s *Session) SetTextValue(id, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.fields {
		if f.ID == id {
			s.previews[id] = value
			return true
		}
	}
	return false
}

func (s *Session) TextValue(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.previews[id]
	return v, ok
}

// Fields returns a copy of the placed fields in creation order
func (s *Session) Fields() []model.Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Field(nil), s.fields...)
}

func (s *Session) FieldsOnPage(page int) []model.Field {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Field
	for _, f := range s.fields {
		if f.Page == page {
			out = append(out, f)
		}
	}
	return out
}

// BoxesOnPage resolves the fields of a page against its current rendered size
func (s *Session) BoxesOnPage(page int) map[string]placement.Box {
	status := s.loader.Status()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]placement.Box)
	if status.Info == nil {
		return out
	}
	rect, ok := s.geometryLocked(status.Info).PageRect(page)
	if !ok {
		return out
	}
	for _, f := range s.fields {
		if f.Page == page {
			out[f.ID] = placement.ResolveBox(placement.FromField(f), rect)
		}
	}
	return out
}

// CanFinalize : at least one signature field is placed
func (s *Session) CanFinalize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.FieldList(s.fields).HasSignature()
}

// Link returns the link generated for the current field set, if any
func (s *Session) Link() (*signclient.Link, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.link == nil {
		return nil, false
	}
	l := *s.link
	return &l, true
}

// LinkError : last link-generation failure shown to the operator
func (s *Session) LinkError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linkError
}

// GenerateLink finalizes the current field set into a new signing session.
// On failure the document and fields stay as they are so the operator can retry.
func (s *Session) GenerateLink(ctx context.Context, issuer LinkIssuer) (*signclient.Link, error) {
	s.mu.Lock()
	if !model.FieldList(s.fields).HasSignature() {
		s.mu.Unlock()
		return nil, ErrNoSignatureField
	}
	if len(s.document) == 0 || s.loader.Status().State != StateReady {
		s.mu.Unlock()
		return nil, ErrNoDocument
	}
	if s.busy {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	s.busy = true
	s.linkError = ""
	doc := signclient.Document{FileName: s.fileName, Data: s.document}
	fields := append([]model.Field(nil), s.fields...)
	revision := s.revision
	s.mu.Unlock()

	link, err := issuer.GenerateLink(ctx, doc, fields)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if revision != s.revision {
		return nil, ErrFieldsChanged
	}
	if err != nil {
		s.linkError = err.Error()
		return nil, err
	}
	s.link = link
	l := *link
	return &l, nil
}

// SaveToFiles files the generated link under a staff or client recipient.
// A failure leaves the generated link untouched.
func (s *Session) SaveToFiles(ctx context.Context, d Deliverer, fileName string, recipientType model.RecipientType, recipientID string) error {
	s.mu.Lock()
	if s.link == nil {
		s.mu.Unlock()
		return ErrNoLink
	}
	if s.busy {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	if fileName == "" {
		fileName = s.fileName
	}
	req := signclient.SaveRequest{
		TokenID:       s.link.Token,
		FileName:      fileName,
		RecipientType: recipientType,
		RecipientID:   recipientID,
	}
	if err := req.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.busy = true
	s.mu.Unlock()

	err := d.SaveToFiles(ctx, req)

	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
	return err
}

func (s *Session) invalidateLinkLocked() {
	s.link = nil
	s.linkError = ""
	s.revision++
}

func (s *Session) geometryLocked(info *pdfdoc.Info) placement.GeometryProvider {
	if s.cfg.Geometry != nil {
		return s.cfg.Geometry
	}
	if s.geometry == nil {
		pages := make([]placement.Rect, 0, info.PageCount())
		for _, p := range info.Pages {
			pages = append(pages, placement.Rect{Width: p.Width, Height: p.Height})
		}
		s.geometry = placement.ScaledGeometry{Pages: pages, Zoom: s.cfg.Zoom}
	}
	return s.geometry
}
