// Package colorapi builds requests for The Color API, fetches them through an
// injected transport and translates the responses into property values.
//
// Every operation is independent. A failed operation returns a
// *ServiceRequestError and never a partially populated value.
package colorapi

import (
	"context"
	"time"

	"github.com/colorful-cli/colorful/key"
	"github.com/colorful-cli/colorful/log"
	"github.com/colorful-cli/colorful/network"
	"github.com/colorful-cli/colorful/property"
	"github.com/colorful-cli/colorful/schema"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the public endpoint of the service.
const DefaultBaseURL = "http://www.thecolorapi.com"

// Fetcher retrieves the body of a URL. Non-success responses are errors.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// Decoder decodes a response body into one of the schema types.
type Decoder interface {
	Decode(data []byte, v any) error
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(data []byte, v any) error

func (f DecoderFunc) Decode(data []byte, v any) error {
	return f(data, v)
}

// Client is a gateway to the service.
type Client struct {
	BaseURL string
	Fetcher Fetcher
	Decoder Decoder
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another service host.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.BaseURL = url
	}
}

// WithDecoder replaces the schema decoder.
func WithDecoder(d Decoder) Option {
	return func(c *Client) {
		c.Decoder = d
	}
}

// New returns a client using fetcher as its transport.
func New(fetcher Fetcher, options ...Option) *Client {
	c := &Client{
		BaseURL: DefaultBaseURL,
		Fetcher: fetcher,
		Decoder: DecoderFunc(schema.Unmarshal),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Default returns a client configured from the api.* keys.
func Default() *Client {
	fetcher := &network.HTTPFetcher{
		Client:    network.NewClient(time.Duration(viper.GetInt(key.APITimeout)) * time.Second),
		UserAgent: viper.GetString(key.APIUserAgent),
	}

	return New(fetcher, WithBaseURL(viper.GetString(key.APIURL)))
}

// ByRGB identifies the color with the given red, green and blue channels.
func (c *Client) ByRGB(ctx context.Context, r, g, b int) (property.Color, error) {
	return c.Identify(ctx, RGB(r, g, b))
}

// ByCMYK identifies the color with the given cyan, magenta, yellow and key components.
func (c *Client) ByCMYK(ctx context.Context, cyan, magenta, yellow, k int) (property.Color, error) {
	return c.Identify(ctx, CMYK(cyan, magenta, yellow, k))
}

// ByHSL identifies the color with the given hue, saturation and lightness.
func (c *Client) ByHSL(ctx context.Context, h, s, l int, unit mo.Option[rune]) (property.Color, error) {
	return c.Identify(ctx, HSL(h, s, l, unit))
}

// ByHex identifies the color with the given hexadecimal notation.
func (c *Client) ByHex(ctx context.Context, hex string) (property.Color, error) {
	return c.Identify(ctx, Hex(hex))
}

// Identify describes the color selected by spec.
func (c *Client) Identify(ctx context.Context, spec Spec) (property.Color, error) {
	url, err := IdentifyURL(c.BaseURL, spec)
	if err != nil {
		return property.Color{}, c.fail(requestError("", ErrInvalidSpec, err))
	}

	var response schema.Color
	if err := c.get(ctx, url, &response); err != nil {
		return property.Color{}, err
	}

	return property.FromResponse(&response), nil
}

// Scheme generates a palette seeded by spec.
func (c *Client) Scheme(ctx context.Context, spec Spec, opts SchemeOptions) (property.Scheme, error) {
	url, err := SchemeURL(c.BaseURL, spec, opts)
	if err != nil {
		return property.Scheme{}, c.fail(requestError("", ErrInvalidSpec, err))
	}

	var response schema.Scheme
	if err := c.get(ctx, url, &response); err != nil {
		return property.Scheme{}, err
	}

	return property.SchemeFromResponse(&response), nil
}

func (c *Client) get(ctx context.Context, url string, v any) error {
	log.Debugf("requesting %s", url)

	data, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return c.fail(requestError(url, ErrTransport, err))
	}

	if err := c.Decoder.Decode(data, v); err != nil {
		return c.fail(requestError(url, ErrDecode, err))
	}

	log.Debugf("decoded %d bytes from %s", len(data), url)
	return nil
}

func (c *Client) fail(err *ServiceRequestError) error {
	log.Error(err)
	return err
}
