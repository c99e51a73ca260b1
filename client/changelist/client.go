// Package changelist provides a client for the EDL changelist
// service.
package changelist

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	defaultBaseURL = "http://localhost:8080"
)

// Client holds the changelist service location and exposes methods
// for storing cut revisions and comparing them. The zero value talks
// to a service on localhost.
type Client struct {
	Base   *url.URL
	Client *http.Client
}

// CreateChangelist compares the two cuts named in the request and
// returns the resulting changelist.
func (c *Client) CreateChangelist(ctx context.Context, req CreateChangelistRequest) (Changelist, error) {
	c.ensure()

	var resp Changelist
	err := c.postResource(ctx, req, &resp, "/changelists")
	if err != nil {
		return Changelist{}, err
	}

	return resp, nil
}

// PutCut parses and stores one cut revision under the named program,
// returning the stored cut together with its changelist against the
// revision stored just before it.
func (c *Client) PutCut(ctx context.Context, program Program, req PutCutRequest) (PutCutResponse, error) {
	c.ensure()

	var resp PutCutResponse
	err := c.postResource(ctx, req, &resp, "/programs/"+string(program)+"/cuts")
	if err != nil {
		return PutCutResponse{}, err
	}

	return resp, nil
}

// GetCut returns a single stored cut revision.
func (c *Client) GetCut(ctx context.Context, program Program, revision Revision) (Cut, error) {
	c.ensure()

	var resp Cut
	err := c.getResource(ctx, &resp, "/programs/"+string(program)+"/cuts/"+string(revision))
	if err != nil {
		return Cut{}, err
	}

	return resp, nil
}

// ListCuts returns the revisions stored for a program, oldest first.
func (c *Client) ListCuts(ctx context.Context, program Program) (CutList, error) {
	c.ensure()

	list := CutList{}
	err := c.getResource(ctx, &list, "/programs/"+string(program)+"/cuts")
	if err != nil {
		return list, err
	}

	return list, nil
}

// DeleteCut removes a stored cut revision and returns it one last
// time.
func (c *Client) DeleteCut(ctx context.Context, program Program, revision Revision) (Cut, error) {
	c.ensure()

	var resp Cut
	err := c.removeResource(ctx, &resp, "/programs/"+string(program)+"/cuts/"+string(revision))
	if err != nil {
		return Cut{}, err
	}

	return resp, nil
}

// ProgramChangelist returns the changelist between two stored
// revisions of a program. An empty to means the latest revision; an
// empty from means the revision stored just before to.
func (c *Client) ProgramChangelist(ctx context.Context, program Program, from, to Revision) (Changelist, error) {
	c.ensure()

	q := url.Values{}
	if from != "" {
		q.Set("from", string(from))
	}
	if to != "" {
		q.Set("to", string(to))
	}
	path := "/programs/" + string(program) + "/changelist"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp Changelist
	err := c.getResource(ctx, &resp, path)
	if err != nil {
		return Changelist{}, err
	}

	return resp, nil
}

func (c *Client) ensure() {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaultTimeout}
	}

	if c.Base == nil {
		c.Base = urlMust(url.Parse(defaultBaseURL))
	}
}

func urlMust(u *url.URL, _ error) *url.URL { return u }
