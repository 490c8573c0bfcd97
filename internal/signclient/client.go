// Package signclient calls the signing-link endpoints on behalf of an editing session.
package signclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model/requestresponse"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	generateLinkPath = "/api/generateSignLink"
	saveToFilesPath  = "/api/admin/saveToFiles"
	listStaffPath    = "/api/admin/users"
	listClientsPath  = "/api/admin/clients"
	signPathPrefix   = "/sign/"
	maxErrorBody     = 64 << 10
)

// Document : file the fields were placed on
type Document struct {
	FileName string
	Data     []byte
}

// Link : relative capability path returned by the issuer
type Link struct {
	Path  string
	Token string
}

// URL resolves the link against the caller's own origin
func (l Link) URL(origin string) string {
	return strings.TrimRight(origin, "/") + l.Path
}

// SaveRequest : Recipient Delivery input. RecipientID is the picker value as text;
// staff ids must parse as integers.
type SaveRequest struct {
	TokenID       string
	FileName      string
	RecipientType model.RecipientType
	RecipientID   string
}

// Validate checks the request locally, before any network dispatch
func (r SaveRequest) Validate() error {
	if !r.RecipientType.Valid() {
		return ErrRecipientType
	}
	if r.TokenID == "" {
		return ErrMissingToken
	}
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.FileName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.RecipientID, validation.Required),
	); err != nil {
		return err
	}
	if r.RecipientType == model.RecipientStaff {
		if _, err := strconv.ParseInt(r.RecipientID, 10, 64); err != nil {
			return fmt.Errorf("%w: staff id %q is not numeric", ErrRecipientIDType, r.RecipientID)
		}
	}
	return nil
}

func (r SaveRequest) body() (requestresponse.SaveToFilesRequest, error) {
	var raw []byte
	if r.RecipientType == model.RecipientStaff {
		id, err := strconv.ParseInt(r.RecipientID, 10, 64)
		if err != nil {
			return requestresponse.SaveToFilesRequest{}, ErrRecipientIDType
		}
		raw = []byte(strconv.FormatInt(id, 10))
	} else {
		encoded, err := json.Marshal(r.RecipientID)
		if err != nil {
			return requestresponse.SaveToFilesRequest{}, err
		}
		raw = encoded
	}
	return requestresponse.SaveToFilesRequest{
		TokenID:       r.TokenID,
		FileName:      r.FileName,
		RecipientType: string(r.RecipientType),
		RecipientID:   raw,
	}, nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBearerToken sets the Authorization header sent with every request
func WithBearerToken(token string) Option {
	return func(cl *Client) { cl.authToken = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateLink uploads the document with its fields and returns the new session link.
// Every call creates a new session.
func (c *Client) GenerateLink(ctx context.Context, doc Document, fields []model.Field) (*Link, error) {
	if len(doc.Data) == 0 {
		return nil, &Error{Message: MessageGenerateFailed, Err: ErrEmptyDocument}
	}

	body, contentType, err := multipartBody(doc, fields)
	if err != nil {
		return nil, &Error{Message: MessageGenerateFailed, Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, generateLinkPath, body)
	if err != nil {
		return nil, &Error{Message: MessageGenerateFailed, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	var out requestresponse.GenerateSignLinkResponse
	if err := c.do(req, &out, MessageGenerateFailed); err != nil {
		return nil, err
	}
	if out.Link == "" {
		return nil, &Error{Message: MessageGenerateFailed, Status: http.StatusOK, Err: ErrMalformedResponse}
	}

	return &Link{Path: out.Link, Token: tokenFromPath(out.Link)}, nil
}

// SaveToFiles associates an issued token with a recipient. Type mismatches are
// rejected locally.
func (c *Client) SaveToFiles(ctx context.Context, r SaveRequest) error {
	if err := r.Validate(); err != nil {
		return err
	}

	payload, err := r.body()
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return &Error{Message: MessageSaveFailed, Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, saveToFilesPath, bytes.NewReader(encoded))
	if err != nil {
		return &Error{Message: MessageSaveFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil, MessageSaveFailed)
}

// ListStaff returns the staff recipient picker entries
func (c *Client) ListStaff(ctx context.Context) ([]requestresponse.StaffOption, error) {
	req, err := c.newRequest(ctx, http.MethodGet, listStaffPath, nil)
	if err != nil {
		return nil, &Error{Message: MessageLookupFailed, Err: err}
	}
	var out requestresponse.ListStaffResponse
	if err := c.do(req, &out, MessageLookupFailed); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListClients returns the client recipient picker entries
func (c *Client) ListClients(ctx context.Context) ([]requestresponse.ClientOption, error) {
	req, err := c.newRequest(ctx, http.MethodGet, listClientsPath, nil)
	if err != nil {
		return nil, &Error{Message: MessageLookupFailed, Err: err}
	}
	var out requestresponse.ListClientsResponse
	if err := c.do(req, &out, MessageLookupFailed); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	return req, nil
}

// do sends req and decodes a 2xx body into out (when non-nil). Any failure is
// reported as *Error carrying the server message or fallback.
func (c *Client) do(req *http.Request, out any, fallback string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Message: serverMessage(resp.Body, fallback),
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Message: fallback, Status: resp.StatusCode, Err: errors.Join(ErrMalformedResponse, err)}
	}
	return nil
}

func serverMessage(body io.Reader, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || json.Unmarshal(data, &payload) != nil || payload.Message == "" {
		return fallback
	}
	return payload.Message
}

func multipartBody(doc Document, fields []model.Field) (*bytes.Buffer, string, error) {
	if fields == nil {
		fields = []model.Field{}
	}
	encodedFields, err := json.Marshal(fields)
	if err != nil {
		return nil, "", err
	}

	name := doc.FileName
	if name == "" {
		name = "document.pdf"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf"; filename=%q`, name))
	header.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(doc.Data); err != nil {
		return nil, "", err
	}

	if err := mw.WriteField("fields", string(encodedFields)); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return &buf, mw.FormDataContentType(), nil
}

func tokenFromPath(path string) string {
	p := path
	if u, err := url.Parse(path); err == nil {
		p = u.Path
	}
	if idx := strings.LastIndex(p, signPathPrefix); idx >= 0 {
		return strings.Trim(p[idx+len(signPathPrefix):], "/")
	}
	return ""
}
