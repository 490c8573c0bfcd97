// Package pdfdoc reads the page layout of uploaded PDF documents.
package pdfdoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/digitorus/pdf"
)

// letter is used when a page carries no MediaBox
var letter = PageSize{Width: 612, Height: 792}

const maxParentDepth = 32

var ErrNotPDF = errors.New("invalid PDF structure: missing %PDF- header")

// PageSize : page dimensions in PDF points
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Info : layout of a parsed document
type Info struct {
	Pages []PageSize `json:"pages"`
}

func (i *Info) PageCount() int {
	return len(i.Pages)
}

// Renderer produces the page layout of a document. Implementations may be slow;
// callers guard them with a timeout.
type Renderer interface {
	Render(ctx context.Context, data []byte) (*Info, error)
}

// Inspector : Renderer backed by github.com/digitorus/pdf
type Inspector struct {
	maxPages int
}

func NewInspector(maxPages int) *Inspector {
	return &Inspector{maxPages: maxPages}
}

func (i *Inspector) Render(ctx context.Context, data []byte) (*Info, error) {
	info, err := Inspect(data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if i.maxPages > 0 && info.PageCount() > i.maxPages {
		return nil, fmt.Errorf("invalid PDF: %d pages exceeds limit of %d", info.PageCount(), i.maxPages)
	}
	return info, nil
}

// Inspect parses data and returns the size of every page
func Inspect(data []byte) (info *Info, err error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}

	// the reader panics on some malformed object graphs
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("corrupted PDF: %v", r)
		}
	}()

	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	numPages := rdr.NumPage()
	if numPages == 0 {
		return nil, errors.New("invalid PDF: document has no pages")
	}

	pages := make([]PageSize, 0, numPages)
	for n := 1; n <= numPages; n++ {
		page := rdr.Page(n)
		if page.V.IsNull() {
			return nil, &PageRenderError{Page: n, Err: errors.New("page not found")}
		}
		pages = append(pages, mediaBoxSize(page.V))
	}

	return &Info{Pages: pages}, nil
}

// mediaBoxSize reads the MediaBox of a page, following inherited values
func mediaBoxSize(v pdf.Value) PageSize {
	for depth := 0; depth < maxParentDepth && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() >= 4 {
			w := box.Index(2).Float64() - box.Index(0).Float64()
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if w < 0 {
				w = -w
			}
			if h < 0 {
				h = -h
			}
			if w > 0 && h > 0 {
				return PageSize{Width: w, Height: h}
			}
		}
		v = v.Key("Parent")
	}
	return letter
}
