package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const uploadErrorDetail = "Failed to upload resume"

// UploadResume sends a resume file as multipart form data. It bypasses the
// generic JSON path because the content type must carry the multipart
// boundary, not application/json. The bearer header and error normalization
// follow the usual contract.
func (c *Client) UploadResume(ctx context.Context, filename string, file io.Reader) (*Resume, error) {
	ctx, span := c.tracer.Start(ctx, "POST /api/resumes/upload",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("upload.filename", filename)),
	)
	defer span.End()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, c.fail(span, &NormalizedError{Detail: fmt.Sprintf("build upload: %v", err)})
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, c.fail(span, &NormalizedError{Detail: fmt.Sprintf("read upload: %v", err)})
	}
	if err := writer.Close(); err != nil {
		return nil, c.fail(span, &NormalizedError{Detail: fmt.Sprintf("build upload: %v", err)})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/resumes/upload", &buf)
	if err != nil {
		return nil, c.fail(span, &NormalizedError{Detail: fmt.Sprintf("build request: %v", err)})
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(span, &NormalizedError{Detail: err.Error()})
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(span, normalize(resp, uploadErrorDetail))
	}

	var resume Resume
	if err := json.NewDecoder(resp.Body).Decode(&resume); err != nil {
		return nil, c.fail(span, &NormalizedError{Detail: "malformed response body"})
	}
	span.SetStatus(codes.Ok, "")
	return &resume, nil
}

// Resumes lists the user's resumes.
func (c *Client) Resumes(ctx context.Context) ([]Resume, error) {
	var resumes []Resume
	if err := c.do(ctx, http.MethodGet, "/api/resumes/", nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// Resume fetches one resume by ID.
func (c *Client) Resume(ctx context.Context, id string) (*Resume, error) {
	var resume Resume
	if err := c.do(ctx, http.MethodGet, "/api/resumes/"+url.PathEscape(id), nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// UpdateResumeSkills replaces the skill list of a resume.
func (c *Client) UpdateResumeSkills(ctx context.Context, id string, skills []string) (*Resume, error) {
	body := struct {
		Skills []string `json:"skills"`
	}{Skills: skills}

	var resume Resume
	if err := c.do(ctx, http.MethodPut, "/api/resumes/"+url.PathEscape(id)+"/skills", body, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// DeleteResume removes a resume.
func (c *Client) DeleteResume(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/resumes/"+url.PathEscape(id), nil, nil)
}
