package session_test

import (
	"testing"

	"github.com/matryer/is"

	"transit-assistant/session"
)

func TestAddRoute_NormalizesAndDeduplicates(t *testing.T) {
	is := is.New(t)
	st := session.New()

	route, added := st.AddRoute(" 10a ")
	is.True(added)
	is.Equal(route, "10A")

	_, added = st.AddRoute("10A")
	is.True(!added) // already tracked

	_, added = st.AddRoute("10a")
	is.True(!added) // case-insensitive duplicate

	is.Equal(st.Routes(), []string{"10A"})
}

func TestRemoveRoute(t *testing.T) {
	is := is.New(t)
	st := session.New()
	st.AddRoute("10")
	st.AddRoute("20")

	route, removed := st.RemoveRoute("10")
	is.True(removed)
	is.Equal(route, "10")
	is.Equal(st.Routes(), []string{"20"})

	_, removed = st.RemoveRoute("99")
	is.True(!removed)
}

func TestRoutes_InsertionOrder(t *testing.T) {
	is := is.New(t)
	st := session.New()
	st.AddRoute("30")
	st.AddRoute("10")
	st.AddRoute("20")

	is.Equal(st.Routes(), []string{"30", "10", "20"})
}

func TestTracks(t *testing.T) {
	is := is.New(t)
	st := session.New()
	st.AddRoute("10A")

	is.True(st.Tracks("10a"))
	is.True(!st.Tracks("20"))
}

func TestValidStopID(t *testing.T) {
	is := is.New(t)

	is.True(session.ValidStopID("1001"))
	is.True(session.ValidStopID("0000"))
	is.True(!session.ValidStopID("100"))   // too short
	is.True(!session.ValidStopID("10011")) // too long
	is.True(!session.ValidStopID("10a1"))  // non-numeric
	is.True(!session.ValidStopID(""))
	is.True(!session.ValidStopID("12 4"))
}
