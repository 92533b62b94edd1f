package resolve_test

import (
	"testing"

	"github.com/dexterix/rosterd/internal/domain/model"
	resolve "github.com/dexterix/rosterd/internal/domain/resolve"
	. "github.com/smartystreets/goconvey/convey"
)

func team(id, name string) model.Team {
	return model.Team{ID: id, TeamID: id, Name: name}
}

func TestResolveCascade(t *testing.T) {
	Convey("Given an index over stored teams", t, func() {
		ix := resolve.NewIndex([]model.Team{
			team("T-001", "Alpha"),
			team("1", "Bare"),
			team("TYDT-667", "Rockets"),
		})

		Convey("When resolving the exact identifier", func() {
			got, ok := ix.Resolve("T-001")

			Convey("Then it should match directly", func() {
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "Alpha")
			})
		})

		Convey("When resolving with different case and padding", func() {
			got, ok := ix.Resolve("t001")

			Convey("Then the punctuation-stripped key should match", func() {
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "Alpha")
			})
		})

		Convey("When resolving a unique suffix", func() {
			got, ok := ix.Resolve("667")

			Convey("Then the single candidate should match", func() {
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "Rockets")
			})
		})

		Convey("When resolving a suffix shorter than the minimum", func() {
			_, ok := ix.Resolve("7")

			Convey("Then it should not match", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When resolving an unknown identifier", func() {
			_, ok := ix.Resolve("ZZZ-999")

			Convey("Then it should fail closed", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When resolving an empty identifier", func() {
			_, ok := ix.Resolve("   ")

			Convey("Then it should fail closed", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestNumericNormalization(t *testing.T) {
	Convey("Given a team stored under a bare numeric identifier", t, func() {
		ix := resolve.NewIndex([]model.Team{team("1", "Bare")})

		Convey("When resolving zero-padded variants", func() {
			for _, input := range []string{"1", "01", "001", "0001"} {
				got, ok := ix.Resolve(input)

				Convey("Then "+input+" should resolve to the same team", func() {
					So(ok, ShouldBeTrue)
					So(got.Name, ShouldEqual, "Bare")
				})
			}
		})
	})
}

func TestSuffixAmbiguity(t *testing.T) {
	Convey("Given two teams whose identifiers share a suffix", t, func() {
		ix := resolve.NewIndex([]model.Team{
			team("A-07", "First"),
			team("B-07", "Second"),
		})

		Convey("When resolving the shared suffix", func() {
			_, ok := ix.Resolve("07")

			Convey("Then ambiguity should be a hard stop", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When resolving one full identifier", func() {
			got, ok := ix.Resolve("a-07")

			Convey("Then the exact path should still work", func() {
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "First")
			})
		})
	})
}

func TestIndexCollisions(t *testing.T) {
	Convey("Given two teams normalizing to the same key", t, func() {
		ix := resolve.NewIndex([]model.Team{
			team("T-1", "First"),
			team("T.1", "Second"),
		})

		Convey("When inspecting the index", func() {
			Convey("Then the collision should be reported", func() {
				So(len(ix.Collisions()), ShouldBeGreaterThan, 0)
			})

			Convey("Then the first registrant should own the stripped key", func() {
				got, ok := ix.Resolve("t1")
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "First")
			})
		})
	})
}

func TestMinSuffixLenOption(t *testing.T) {
	Convey("Given an index with a raised suffix minimum", t, func() {
		ix := resolve.NewIndex(
			[]model.Team{team("TYDT-667", "Rockets")},
			resolve.WithMinSuffixLen(4),
		)

		Convey("When resolving a three-character suffix", func() {
			_, ok := ix.Resolve("667")

			Convey("Then it should be below the minimum and fail", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When resolving a four-character suffix", func() {
			got, ok := ix.Resolve("-667")

			Convey("Then it should match", func() {
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "Rockets")
			})
		})
	})
}
