package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

func TestLinkMemories(t *testing.T) {
	Convey("Given a client against a graph-aware server", t, func() {
		var query map[string]string

		mux := http.NewServeMux()
		mux.HandleFunc("/memories/mem-1/link", func(w http.ResponseWriter, r *http.Request) {
			query = map[string]string{
				"target_id":         r.URL.Query().Get("target_id"),
				"relationship_type": r.URL.Query().Get("relationship_type"),
			}
			json.NewEncoder(w).Encode(types.Link{
				SourceID:         "mem-1",
				TargetID:         query["target_id"],
				RelationshipType: query["relationship_type"],
			})
		})

		server := httptest.NewServer(mux)
		defer server.Close()
		client := New(server.URL, "key")

		Convey("When linking two memories", func() {
			link, err := client.LinkMemories(t.Context(), "mem-1", "mem-2", types.RelSupports)

			Convey("Then the relationship is sent as query parameters", func() {
				So(err, ShouldBeNil)
				So(link.TargetID, ShouldEqual, "mem-2")
				So(query["relationship_type"], ShouldEqual, types.RelSupports)
			})
		})

		Convey("When the source id is blank", func() {
			_, err := client.LinkMemories(t.Context(), "", "mem-2", types.RelSupports)

			So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
		})
	})
}

func TestGetMemoryContext(t *testing.T) {
	Convey("Given a client against a graph-aware server", t, func() {
		var depth string

		mux := http.NewServeMux()
		mux.HandleFunc("/memories/mem-1/context", func(w http.ResponseWriter, r *http.Request) {
			depth = r.URL.Query().Get("depth")
			json.NewEncoder(w).Encode(types.MemoryContext{
				Memory:          types.Memory{ID: "mem-1", Content: "likes coffee"},
				RelatedMemories: []types.Memory{{ID: "mem-2", Content: "buys beans weekly"}},
			})
		})

		server := httptest.NewServer(mux)
		defer server.Close()
		client := New(server.URL, "key")

		Convey("When fetching the neighborhood", func() {
			context, err := client.GetMemoryContext(t.Context(), "mem-1", 3)

			So(err, ShouldBeNil)
			So(depth, ShouldEqual, "3")
			So(len(context.RelatedMemories), ShouldEqual, 1)
		})

		Convey("When the depth is omitted", func() {
			_, err := client.GetMemoryContext(t.Context(), "mem-1", 0)

			Convey("Then the default depth is applied", func() {
				So(err, ShouldBeNil)
				So(depth, ShouldEqual, "2")
			})
		})
	})
}

func TestFindMemoryPath(t *testing.T) {
	Convey("Given a client against a graph-aware server", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/memories/mem-1/path/mem-3", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(types.MemoryPath{
				Path: []types.Memory{
					{ID: "mem-1"}, {ID: "mem-2"}, {ID: "mem-3"},
				},
				Length: 2,
				Found:  true,
			})
		})

		server := httptest.NewServer(mux)
		defer server.Close()
		client := New(server.URL, "key")

		Convey("When a path exists", func() {
			path, err := client.FindMemoryPath(t.Context(), "mem-1", "mem-3")

			So(err, ShouldBeNil)
			So(path.Found, ShouldBeTrue)
			So(len(path.Path), ShouldEqual, 3)
		})
	})
}

func TestRollbackMemory(t *testing.T) {
	Convey("Given a client against a versioned server", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/memories/mem-1/rollback", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(types.RollbackResult{
				MemoryID:      "mem-1",
				TargetVersion: 2,
				NewVersion:    5,
				Success:       true,
			})
		})

		server := httptest.NewServer(mux)
		defer server.Close()
		client := New(server.URL, "key")

		Convey("When rolling back to a valid version", func() {
			result, err := client.RollbackMemory(t.Context(), "mem-1", 2, "user-1")

			So(err, ShouldBeNil)
			So(result.Success, ShouldBeTrue)
			So(result.NewVersion, ShouldEqual, 5)
		})

		Convey("When the target version is not positive", func() {
			_, err := client.RollbackMemory(t.Context(), "mem-1", 0, "user-1")

			So(err, ShouldHaveSameTypeAs, &apierrors.ValidationError{})
		})
	})
}
