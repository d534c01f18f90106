package memphora

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

func TestNew(t *testing.T) {
	Convey("Given SDK construction", t, func() {
		t.Setenv(EnvUserID, "")
		t.Setenv(EnvAPIKey, "")
		t.Setenv(EnvAPIURL, "")

		Convey("With explicit options", func() {
			sdk, err := New(WithUserID("user-1"), WithAPIKey("key-1"))

			So(err, ShouldBeNil)
			So(sdk.UserID(), ShouldEqual, "user-1")
		})

		Convey("With credentials in the environment", func() {
			t.Setenv(EnvUserID, "env-user")
			t.Setenv(EnvAPIKey, "env-key")

			sdk, err := New()

			So(err, ShouldBeNil)
			So(sdk.UserID(), ShouldEqual, "env-user")
		})

		Convey("Explicit options win over the environment", func() {
			t.Setenv(EnvUserID, "env-user")
			t.Setenv(EnvAPIKey, "env-key")

			sdk, err := New(WithUserID("explicit-user"))

			So(err, ShouldBeNil)
			So(sdk.UserID(), ShouldEqual, "explicit-user")
		})

		Convey("The API URL falls back to the environment, then production", func() {
			t.Setenv(EnvAPIURL, "http://localhost:8000")

			sdk, err := New(WithUserID("user-1"), WithAPIKey("key-1"))

			So(err, ShouldBeNil)
			So(sdk.Client().BaseURL(), ShouldEqual, "http://localhost:8000")
		})

		Convey("Without a user id construction fails", func() {
			sdk, err := New(WithAPIKey("key-1"))

			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
			So(sdk, ShouldBeNil)
		})

		Convey("Without an API key construction fails", func() {
			sdk, err := New(WithUserID("user-1"))

			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
			So(sdk, ShouldBeNil)
		})
	})
}

func TestFormatContext(t *testing.T) {
	Convey("Given memories to format", t, func() {
		Convey("An empty slice yields an empty context", func() {
			So(FormatContext(nil), ShouldEqual, "")
		})

		Convey("Memories are rendered as a bulleted block", func() {
			formatted := FormatContext([]types.Memory{
				{Content: "likes coffee"},
				{Content: "lives in Amsterdam"},
			})

			So(formatted, ShouldEqual,
				"Relevant context from past conversations:\n- likes coffee\n- lives in Amsterdam")
		})
	})
}

// newTestSDK points the facade at an httptest server.
func newTestSDK(t *testing.T, handler http.Handler, opts ...Option) (*Memphora, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{
		WithUserID("user-1"),
		WithAPIKey("test-key"),
		WithAPIURL(server.URL),
	}, opts...)

	sdk, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}

	return sdk, server
}

func TestGetContext(t *testing.T) {
	Convey("Given a facade against a mock API", t, func() {
		var searches atomic.Int64

		mux := http.NewServeMux()
		mux.HandleFunc("/memories/search", func(w http.ResponseWriter, r *http.Request) {
			searches.Add(1)
			json.NewEncoder(w).Encode([]types.Memory{
				{ID: "mem-1", Content: "likes coffee", Score: 0.9},
			})
		})

		Convey("When fetching context", func() {
			sdk, _ := newTestSDK(t, mux)

			context, err := sdk.GetContext(t.Context(), "coffee", 5)

			So(err, ShouldBeNil)
			So(context, ShouldEqual, "Relevant context from past conversations:\n- likes coffee")
		})

		Convey("When caching is enabled", func() {
			sdk, _ := newTestSDK(t, mux, WithCaching(true))

			first, err := sdk.GetContext(t.Context(), "coffee", 5)
			So(err, ShouldBeNil)

			second, err := sdk.GetContext(t.Context(), "coffee", 5)
			So(err, ShouldBeNil)

			Convey("Then the second call is served locally", func() {
				So(second, ShouldEqual, first)
				So(searches.Load(), ShouldEqual, 1)
			})
		})

		Convey("When the search fails", func() {
			failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})
			sdk, _ := newTestSDK(t, failing)

			_, err := sdk.GetContext(t.Context(), "coffee", 5)

			So(err, ShouldHaveSameTypeAs, &apierrors.AuthenticationError{})
		})
	})
}

func TestStore(t *testing.T) {
	Convey("Given a facade against a mock API", t, func() {
		var body map[string]any

		mux := http.NewServeMux()
		mux.HandleFunc("/memories", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			json.NewEncoder(w).Encode(types.Memory{ID: "mem-1", Content: body["content"].(string)})
		})

		sdk, _ := newTestSDK(t, mux)

		Convey("When storing a memory", func() {
			memory, err := sdk.Store(t.Context(), "likes coffee", map[string]any{"source": "test"})

			Convey("Then the bound user id is sent", func() {
				So(err, ShouldBeNil)
				So(memory.ID, ShouldEqual, "mem-1")
				So(body["user_id"], ShouldEqual, "user-1")
				So(body["content"], ShouldEqual, "likes coffee")
			})
		})
	})
}

func TestGetConversation(t *testing.T) {
	Convey("Given a facade against a mock API", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/conversations/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/conversations/conv-1" {
				json.NewEncoder(w).Encode(types.Conversation{ID: "conv-1", Platform: "cli"})
				return
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "conversation not found"})
		})

		sdk, _ := newTestSDK(t, mux)

		Convey("When the conversation exists", func() {
			conversation, err := sdk.GetConversation(t.Context(), "conv-1")

			So(err, ShouldBeNil)
			So(conversation.ID, ShouldEqual, "conv-1")
			So(conversation.IsZero(), ShouldBeFalse)
		})

		Convey("When the conversation is missing", func() {
			conversation, err := sdk.GetConversation(t.Context(), "missing")

			Convey("Then a zero conversation and no error come back", func() {
				So(err, ShouldBeNil)
				So(conversation.IsZero(), ShouldBeTrue)
			})
		})
	})
}
