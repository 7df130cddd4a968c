package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		Convey("uses the given timeout", func() {
			So(NewClient(5*time.Second).Timeout, ShouldEqual, 5*time.Second)
		})

		Convey("falls back to the default timeout", func() {
			So(NewClient(0).Timeout, ShouldEqual, DefaultTimeout)
			So(NewClient(-time.Second).Timeout, ShouldEqual, DefaultTimeout)
		})

		Convey("shares the tuned transport", func() {
			So(NewClient(time.Second).Transport, ShouldEqual, Client.Transport)
		})
	})
}

func TestFetch(t *testing.T) {
	Convey("Given a local server", t, func() {
		var header http.Header
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header = r.Header.Clone()
			switch r.URL.Path {
			case "/ok":
				_, _ = w.Write([]byte(`{"ok":true}`))
			case "/slow":
				time.Sleep(200 * time.Millisecond)
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		fetcher := &HTTPFetcher{UserAgent: "colorful/test"}

		Convey("A successful response returns the body", func() {
			body, err := fetcher.Fetch(context.Background(), server.URL+"/ok")
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"ok":true}`)

			Convey("and the request carries the user agent and a request id", func() {
				So(header.Get("User-Agent"), ShouldEqual, "colorful/test")
				_, err := uuid.Parse(header.Get(RequestIDHeader))
				So(err, ShouldBeNil)
			})
		})

		Convey("A non-success status is a StatusError", func() {
			_, err := fetcher.Fetch(context.Background(), server.URL+"/missing")

			var status *StatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("A cancelled context aborts the request", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			_, err := fetcher.Fetch(ctx, server.URL+"/slow")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		})
	})

	Convey("A closed server is a connection error", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := (&HTTPFetcher{}).Fetch(context.Background(), url)
		So(err, ShouldNotBeNil)

		var status *StatusError
		So(errors.As(err, &status), ShouldBeFalse)
	})
}
