package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"time"

	"PixelLab/internal/vector"
)

const (
	// DocumentVersion is written to every saved document.
	DocumentVersion = "2.1"
	// MaxCanvasSize bounds a document's width and height.
	MaxCanvasSize = 8192
)

var supportedVersions = []string{"1.0", "2.0", DocumentVersion}

var (
	// ErrBadLayerIndex is returned when a document's current layer does not
	// name one of its layers.
	ErrBadLayerIndex = errors.New("current layer index out of range")
	// ErrEmptyDocument is returned for a document with a layer list but no
	// layers in it.
	ErrEmptyDocument = errors.New("document has no layers")
	// ErrVersion is returned for a document written by an unknown version.
	ErrVersion = errors.New("unsupported document version")
)

// Document is the saved form of a project. Files without a layer list are
// the legacy single-layer format and carry their objects in Objects.
type Document struct {
	Version      string          `json:"version,omitempty"`
	Width        int             `json:"width"`
	Height       int             `json:"height"`
	Palette      []string        `json:"palette,omitempty"`
	Layers       []LayerRecord   `json:"layers,omitempty"`
	CurrentLayer int             `json:"current_layer_index"`
	Objects      []vector.Record `json:"objects,omitempty"`
	Logs         []LogRecord     `json:"logs,omitempty"`
}

// LayerRecord is the saved form of a Layer.
type LayerRecord struct {
	Name    string          `json:"name"`
	Visible *bool           `json:"visible,omitempty"`
	Locked  bool            `json:"locked"`
	Objects []vector.Record `json:"objects"`
}

// LogRecord is the saved form of an Event. Time is kept as text because
// older files use a timestamp without a zone.
type LogRecord struct {
	Seq     uint64    `json:"seq,omitempty"`
	Time    string    `json:"time"`
	Kind    EventKind `json:"kind,omitempty"`
	Name    string    `json:"name,omitempty"`
	Type    string    `json:"type,omitempty"`
	Count   int       `json:"count,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Legacy reports whether d uses the single-layer format.
func (d *Document) Legacy() bool { return d.Layers == nil }

// Encode writes d as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// DecodeDocument reads a document and checks its version and size.
func DecodeDocument(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if d.Version == "" {
		d.Version = "1.0"
	}
	if !slices.Contains(supportedVersions, d.Version) {
		return nil, fmt.Errorf("%w: %q", ErrVersion, d.Version)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: width and height", vector.ErrMissingField)
	}
	if d.Width > MaxCanvasSize || d.Height > MaxCanvasSize {
		return nil, fmt.Errorf("%w: canvas %dx%d exceeds %d", vector.ErrBadField, d.Width, d.Height, MaxCanvasSize)
	}
	return &d, nil
}

// Document captures the manager's full state for a canvas of the given size.
func (m *Manager) Document(width, height int) *Document {
	d := &Document{
		Version:      DocumentVersion,
		Width:        width,
		Height:       height,
		Palette:      m.palette.Hex(),
		Layers:       make([]LayerRecord, len(m.layers)),
		CurrentLayer: m.current,
	}
	for i, l := range m.layers {
		visible := l.Visible
		lr := LayerRecord{Name: l.Name, Visible: &visible, Locked: l.Locked, Objects: []vector.Record{}}
		for _, o := range l.objects {
			lr.Objects = append(lr.Objects, vector.ToRecord(o))
		}
		d.Layers[i] = lr
	}
	for _, e := range m.log.entries {
		d.Logs = append(d.Logs, LogRecord{
			Seq:     e.Seq,
			Time:    e.Time.Format(time.RFC3339Nano),
			Kind:    e.Kind,
			Name:    e.Name,
			Type:    e.Type,
			Count:   e.Count,
			Message: e.Message,
		})
	}
	return d
}

// Load replaces the manager's state with d. The whole document is decoded
// before anything changes, so a malformed document leaves the manager as
// it was.
func (m *Manager) Load(d *Document) error {
	layers, current, err := buildLayers(d)
	if err != nil {
		return err
	}
	palette := DefaultPalette()
	if len(d.Palette) > 0 {
		palette.SetHex(d.Palette)
	}
	m.install(layers, current)
	m.palette = palette
	m.log.replace(restoreEvents(d.Logs))
	if d.Legacy() {
		m.record(Event{Kind: EventLegacyLoaded})
	}
	log.Printf("[STATE] loaded document v%s: %d layers, %d objects", d.Version, len(layers), m.Len())
	return nil
}

func buildLayers(d *Document) ([]*Layer, int, error) {
	if d.Legacy() {
		l := NewLayer("Background")
		objs, err := decodeObjects(d.Objects)
		if err != nil {
			return nil, 0, err
		}
		if err := uniqueIDs(objs, make(map[vector.ID]bool)); err != nil {
			return nil, 0, err
		}
		l.objects = objs
		return []*Layer{l}, 0, nil
	}
	if len(d.Layers) == 0 {
		return nil, 0, ErrEmptyDocument
	}
	if d.CurrentLayer < 0 || d.CurrentLayer >= len(d.Layers) {
		return nil, 0, fmt.Errorf("%w: %d of %d", ErrBadLayerIndex, d.CurrentLayer, len(d.Layers))
	}
	layers := make([]*Layer, len(d.Layers))
	seen := make(map[vector.ID]bool)
	for i, lr := range d.Layers {
		name := lr.Name
		if name == "" {
			name = "Layer"
		}
		l := NewLayer(name)
		if lr.Visible != nil {
			l.Visible = *lr.Visible
		}
		l.Locked = lr.Locked
		objs, err := decodeObjects(lr.Objects)
		if err != nil {
			return nil, 0, fmt.Errorf("layer %d: %w", i, err)
		}
		if err := uniqueIDs(objs, seen); err != nil {
			return nil, 0, fmt.Errorf("layer %d: %w", i, err)
		}
		l.objects = objs
		layers[i] = l
	}
	return layers, d.CurrentLayer, nil
}

// uniqueIDs fails on the first object, at any depth, whose id is already
// in seen. Every id it passes is added to seen.
func uniqueIDs(objs []vector.Object, seen map[vector.ID]bool) error {
	var dup vector.ID
	for _, o := range objs {
		vector.Walk(o, func(x vector.Object) {
			if seen[x.ID()] && dup == (vector.ID{}) {
				dup = x.ID()
			}
			seen[x.ID()] = true
		})
	}
	if dup != (vector.ID{}) {
		return fmt.Errorf("%w: duplicate id %s", vector.ErrBadField, dup)
	}
	return nil
}

func decodeObjects(records []vector.Record) ([]vector.Object, error) {
	objs := make([]vector.Object, 0, len(records))
	for i, r := range records {
		o, err := vector.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objs = append(objs, o)
	}
	return objs, nil
}

var legacyTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"}

func restoreEvents(records []LogRecord) []Event {
	events := make([]Event, 0, len(records))
	for _, r := range records {
		e := Event{Seq: r.Seq, Kind: r.Kind, Name: r.Name, Type: r.Type, Count: r.Count, Message: r.Message}
		if e.Kind == "" {
			e.Kind = EventNote
		}
		for _, layout := range legacyTimeLayouts {
			if t, err := time.Parse(layout, r.Time); err == nil {
				e.Time = t
				break
			}
		}
		events = append(events, e)
	}
	return events
}
