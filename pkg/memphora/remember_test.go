package memphora

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRemember(t *testing.T) {
	Convey("Given a wrapped chat function", t, func() {
		var calls []string

		fetch := func(ctx context.Context, query string) (string, error) {
			calls = append(calls, "fetch")
			return "Relevant context from past conversations:\n- likes coffee", nil
		}

		record := func(ctx context.Context, userMessage, assistantReply string) error {
			calls = append(calls, "record")
			return nil
		}

		Convey("When the call succeeds", func() {
			var receivedContext string

			wrapped := Remember(fetch, record, func(ctx context.Context, message, memoryContext string) (string, error) {
				calls = append(calls, "fn")
				receivedContext = memoryContext
				return "reply", nil
			})

			reply, err := wrapped(t.Context(), "hello")

			Convey("Then fetch runs once before fn and record once after", func() {
				So(err, ShouldBeNil)
				So(reply, ShouldEqual, "reply")
				So(calls, ShouldResemble, []string{"fetch", "fn", "record"})
				So(receivedContext, ShouldContainSubstring, "likes coffee")
			})
		})

		Convey("When fetching context fails", func() {
			failingFetch := func(ctx context.Context, query string) (string, error) {
				calls = append(calls, "fetch")
				return "", errors.New("search unavailable")
			}

			var receivedContext string
			wrapped := Remember(failingFetch, record, func(ctx context.Context, message, memoryContext string) (string, error) {
				calls = append(calls, "fn")
				receivedContext = memoryContext
				return "reply", nil
			})

			reply, err := wrapped(t.Context(), "hello")

			Convey("Then the call proceeds with an empty context", func() {
				So(err, ShouldBeNil)
				So(reply, ShouldEqual, "reply")
				So(receivedContext, ShouldEqual, "")
				So(calls, ShouldResemble, []string{"fetch", "fn", "record"})
			})
		})

		Convey("When the chat function fails", func() {
			wrapped := Remember(fetch, record, func(ctx context.Context, message, memoryContext string) (string, error) {
				calls = append(calls, "fn")
				return "", errors.New("model error")
			})

			_, err := wrapped(t.Context(), "hello")

			Convey("Then nothing is recorded", func() {
				So(err, ShouldNotBeNil)
				So(calls, ShouldResemble, []string{"fetch", "fn"})
			})
		})

		Convey("When recording fails", func() {
			failingRecord := func(ctx context.Context, userMessage, assistantReply string) error {
				calls = append(calls, "record")
				return errors.New("store unavailable")
			}

			wrapped := Remember(fetch, failingRecord, func(ctx context.Context, message, memoryContext string) (string, error) {
				calls = append(calls, "fn")
				return "reply", nil
			})

			reply, err := wrapped(t.Context(), "hello")

			Convey("Then the reply still comes back", func() {
				So(err, ShouldBeNil)
				So(reply, ShouldEqual, "reply")
				So(calls, ShouldResemble, []string{"fetch", "fn", "record"})
			})
		})

		Convey("When the reply is empty", func() {
			wrapped := Remember(fetch, record, func(ctx context.Context, message, memoryContext string) (string, error) {
				calls = append(calls, "fn")
				return "", nil
			})

			_, err := wrapped(t.Context(), "hello")

			Convey("Then the exchange is not recorded", func() {
				So(err, ShouldBeNil)
				So(calls, ShouldResemble, []string{"fetch", "fn"})
			})
		})
	})
}
