package colorapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/colorful-cli/colorful/network"
	"github.com/colorful-cli/colorful/property"
	"github.com/colorful-cli/colorful/schema"
	"github.com/colorful-cli/colorful/space"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// recorder answers every request with body and remembers the requested URLs.
type recorder struct {
	body []byte
	err  error
	urls []string
}

func (r *recorder) Fetch(_ context.Context, url string) ([]byte, error) {
	r.urls = append(r.urls, url)
	return r.body, r.err
}

func TestIdentify(t *testing.T) {
	ctx := context.Background()

	Convey("Given a stub transport returning red", t, func() {
		stub := &recorder{body: lo.Must(os.ReadFile("testdata/red.json"))}
		client := New(stub, WithBaseURL(base))

		Convey("ByHex returns the translated color", func() {
			c, err := client.ByHex(ctx, "#FF0000")
			So(err, ShouldBeNil)
			So(c.RGB.Values, ShouldResemble, space.RGB[uint16]{Red: 255, Green: 0, Blue: 0})
			So(c.Describe(false), ShouldEqual, "Red")
			So(stub.urls, ShouldResemble, []string{base + "/id?hex=FF0000"})
		})

		Convey("every constructor requests its own query", func() {
			_, _ = client.ByRGB(ctx, 255, 0, 0)
			_, _ = client.ByCMYK(ctx, 0, 100, 100, 0)
			_, _ = client.ByHSL(ctx, 0, 100, 50, mo.None[rune]())
			So(stub.urls, ShouldResemble, []string{
				base + "/id?rgb=rgb(255,0,0)",
				base + "/id?cmyk=cmyk(0,100,100,0)",
				base + "/id?hsl=hsl(0,100%,50%)",
			})
		})

		Convey("the result matches translating the payload directly", func() {
			var response schema.Color
			lo.Must0(schema.Unmarshal(stub.body, &response))

			c, err := client.ByRGB(ctx, 255, 0, 0)
			So(err, ShouldBeNil)
			So(c, ShouldResemble, property.FromResponse(&response))
		})

		Convey("a custom decoder is used", func() {
			client := New(stub, WithBaseURL(base), WithDecoder(DecoderFunc(func(_ []byte, v any) error {
				v.(*schema.Color).Name.Value = "Stubbed"
				return nil
			})))

			c, err := client.ByRGB(ctx, 1, 2, 3)
			So(err, ShouldBeNil)
			So(c.Name.Value, ShouldEqual, "Stubbed")
		})
	})

	Convey("Given a failing transport", t, func() {
		cause := errors.New("connection refused")
		stub := &recorder{err: cause}
		client := New(stub, WithBaseURL(base))

		c, err := client.ByRGB(ctx, 1, 2, 3)

		Convey("the error is a transport error naming the URL", func() {
			So(errors.Is(err, ErrTransport), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(errors.Is(err, ErrDecode), ShouldBeFalse)

			var requestErr *ServiceRequestError
			So(errors.As(err, &requestErr), ShouldBeTrue)
			So(requestErr.URL, ShouldEqual, base+"/id?rgb=rgb(1,2,3)")
			So(err.Error(), ShouldContainSubstring, requestErr.URL)
		})

		Convey("no data is returned", func() {
			So(c, ShouldResemble, property.Color{})
		})
	})

	Convey("Given a transport returning something else", t, func() {
		stub := &recorder{body: []byte(`{"hex":{"value":"#000000","clean":"000000"}}`)}
		client := New(stub, WithBaseURL(base))

		_, err := client.ByHex(ctx, "000000")

		Convey("the error is a decode error naming the URL", func() {
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
			So(errors.Is(err, schema.ErrMissingField), ShouldBeTrue)

			var requestErr *ServiceRequestError
			So(errors.As(err, &requestErr), ShouldBeTrue)
			So(requestErr.URL, ShouldEqual, base+"/id?hex=000000")
		})
	})

	Convey("An invalid spec never reaches the transport", t, func() {
		stub := &recorder{}
		client := New(stub)

		_, err := client.ByHex(ctx, "")
		So(errors.Is(err, ErrInvalidSpec), ShouldBeTrue)

		_, err = client.Identify(ctx, HSV(0, 0, 0, mo.None[rune]()))
		So(errors.Is(err, ErrInvalidSpec), ShouldBeTrue)
		So(errors.Is(err, space.ErrUnsupported), ShouldBeTrue)

		So(stub.urls, ShouldBeEmpty)
	})

	Convey("New points at the public service by default", t, func() {
		client := New(&recorder{})
		So(client.BaseURL, ShouldEqual, DefaultBaseURL)
		So(client.Decoder, ShouldNotBeNil)
	})
}

func TestScheme(t *testing.T) {
	ctx := context.Background()

	Convey("Given a stub transport returning a monochrome scheme", t, func() {
		stub := &recorder{body: lo.Must(os.ReadFile("testdata/scheme.json"))}
		client := New(stub, WithBaseURL(base))

		s, err := client.Scheme(ctx, Hex("#FF0000"), SchemeOptions{
			Mode:  mo.Some(Monochrome),
			Count: mo.Some(-4),
		})

		Convey("the scheme is translated in order", func() {
			So(err, ShouldBeNil)
			So(s.Mode, ShouldEqual, "monochrome")
			So(len(s.Colors), ShouldEqual, 4)
			So(s.Colors[0].Hex.Value, ShouldEqual, "#330000")
			So(s.Colors[3].Hex.Value, ShouldEqual, "#FF3333")
			So(s.Seed.Name.Value, ShouldEqual, "Red")
		})

		Convey("the request carries the normalised count", func() {
			So(stub.urls, ShouldResemble, []string{base + "/scheme?hex=FF0000&mode=monochrome&count=4"})
		})
	})

	Convey("A failing scheme request returns no palette", t, func() {
		client := New(&recorder{err: errors.New("timeout")}, WithBaseURL(base))

		s, err := client.Scheme(ctx, RGB(0, 0, 0), SchemeOptions{})
		So(errors.Is(err, ErrTransport), ShouldBeTrue)
		So(s.Colors, ShouldBeNil)
	})
}

func TestHTTPGateway(t *testing.T) {
	Convey("Given a local service", t, func() {
		red := lo.Must(os.ReadFile("testdata/red.json"))
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != IdentifyPath || r.URL.Query().Get("hex") != "FF0000" {
				http.Error(w, "no such color", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(red)
		}))
		defer server.Close()

		client := New(&network.HTTPFetcher{}, WithBaseURL(server.URL))

		Convey("a hex request is answered", func() {
			c, err := client.ByHex(context.Background(), "#FF0000")
			So(err, ShouldBeNil)
			So(c.Hex.Clean, ShouldEqual, "FF0000")
			So(c.Contrast, ShouldEqual, "#ffffff")
		})

		Convey("a rejected request is a transport error carrying the status", func() {
			_, err := client.ByRGB(context.Background(), 1, 2, 3)
			So(errors.Is(err, ErrTransport), ShouldBeTrue)

			var status *network.StatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
