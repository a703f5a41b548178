package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dprasetya/storyline/internal/client/creds"
	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/common"
	"github.com/go-resty/resty/v2"
)

// pushKeyTimeout bounds the optional push-key discovery call. The endpoint
// may not exist at all, so the lookup fails fast instead of holding up the
// caller.
const pushKeyTimeout = time.Second

// envelope is the common response shape of the story API. Every endpoint
// answers with an error flag and a message, plus an operation-specific
// payload field.
type envelope struct {
	Error       bool                `json:"error"`
	Message     string              `json:"message"`
	LoginResult *models.LoginResult `json:"loginResult"`
	ListStory   []models.Story      `json:"listStory"`
	Story       *models.Story       `json:"story"`
	Key         string              `json:"key"`
}

// RESTClient implements Client against the story REST API. The bearer token
// is read from the credential store on every request, so a login or logout
// elsewhere in the process is picked up immediately.
type RESTClient struct {
	http  *resty.Client
	creds creds.Store
}

// NewRESTClient builds a RESTClient for the API at baseURL.
func NewRESTClient(baseURL string, credStore creds.Store) *RESTClient {
	return &RESTClient{
		http:  resty.New().SetBaseURL(baseURL),
		creds: credStore,
	}
}

// decode parses the response body into an envelope. A body that is not
// valid JSON yields a zero envelope, mirroring how a failed status without
// a body is handled.
func decode(resp *resty.Response) envelope {
	var env envelope
	_ = json.Unmarshal(resp.Body(), &env)
	return env
}

// check applies the API's error convention: a response failed if the HTTP
// status is not successful OR the body carries the error flag. The surfaced
// message prefers the server's own over a generic status string.
func check(resp *resty.Response, env envelope) error {
	if !resp.IsError() && !env.Error {
		return nil
	}
	msg := env.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", resp.StatusCode())
	}
	if resp.StatusCode() == 401 {
		return fmt.Errorf("%w: %s", common.ErrUnauthenticated, msg)
	}
	return fmt.Errorf("%w: %s", common.ErrRemoteRejected, msg)
}

// bearer returns an authenticated request, or ErrUnauthenticated when no
// credential is held.
func (c *RESTClient) bearer(ctx context.Context) (*resty.Request, error) {
	token := c.creds.Get(creds.KeyToken)
	if token == "" {
		return nil, common.ErrUnauthenticated
	}
	return c.http.R().SetContext(ctx).SetAuthToken(token), nil
}

func transportErr(err error) error {
	return fmt.Errorf("%w: %v", common.ErrNetworkUnavailable, err)
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/login")
	if err != nil {
		return nil, transportErr(err)
	}

	env := decode(resp)
	if err := check(resp, env); err != nil {
		return nil, err
	}
	if env.LoginResult == nil {
		return nil, fmt.Errorf("%w: login response without loginResult", common.ErrRemoteRejected)
	}
	return env.LoginResult, nil
}

func (c *RESTClient) Register(ctx context.Context, name, email, password string) error {
	resp, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name, "email": email, "password": password}).
		Post("/register")
	if err != nil {
		return transportErr(err)
	}
	return check(resp, decode(resp))
}

func (c *RESTClient) GetStories(ctx context.Context, page, size int, withLocation bool) ([]models.Story, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	req.SetQueryParam("page", strconv.Itoa(page))
	req.SetQueryParam("size", strconv.Itoa(size))
	if withLocation {
		req.SetQueryParam("location", "1")
	}

	resp, err := req.Get("/stories")
	if err != nil {
		return nil, transportErr(err)
	}

	env := decode(resp)
	if err := check(resp, env); err != nil {
		return nil, err
	}
	return env.ListStory, nil
}

func (c *RESTClient) AddStory(ctx context.Context, story models.NewStory) (*models.Story, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	req.SetMultipartField("photo", story.PhotoName, story.PhotoType, bytes.NewReader(story.Photo))
	req.SetMultipartFormData(map[string]string{"description": story.Description})
	if story.Lat != nil && story.Lon != nil {
		req.SetMultipartFormData(map[string]string{
			"lat": strconv.FormatFloat(*story.Lat, 'f', -1, 64),
			"lon": strconv.FormatFloat(*story.Lon, 'f', -1, 64),
		})
	}

	resp, err := req.Post("/stories")
	if err != nil {
		return nil, transportErr(err)
	}

	env := decode(resp)
	if err := check(resp, env); err != nil {
		return nil, err
	}
	return env.Story, nil
}

func (c *RESTClient) VapidPublicKey(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, pushKeyTimeout)
	defer cancel()

	resp, err := c.http.R().SetContext(ctx).Get("/vapid-public-key")
	if err != nil {
		return "", transportErr(err)
	}

	env := decode(resp)
	if err := check(resp, env); err != nil {
		return "", err
	}
	return env.Key, nil
}
