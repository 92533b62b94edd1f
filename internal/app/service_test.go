package service_test

import (
	"context"
	"errors"
	"testing"

	decode "github.com/dexterix/rosterd/internal/adapters/decode"
	repository "github.com/dexterix/rosterd/internal/adapters/repository"
	service "github.com/dexterix/rosterd/internal/app"
	"github.com/dexterix/rosterd/internal/domain/model"
	"github.com/dexterix/rosterd/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const rosterCSV = "TeamId,Team Name,Members,Team Leader,Email,Phone Number,College/University\n" +
	"TYDT-667,Rockets,Alice,Alice,alice@example.com,111,State College\n" +
	",,Bob,,bob@example.com,,\n" +
	",,Carol,,carol@example.com,,\n"

func startService(ctx context.Context, opts ...service.Option) *service.Service {
	_ = logger.Init()
	svc := service.New(opts...)
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}
	return svc
}

func TestImportRoster(t *testing.T) {
	Convey("Given a fresh service and a three-row roster for one team", t, func() {
		ctx := context.Background()
		svc := startService(ctx)

		Convey("When importing the file", func() {
			report, err := svc.ImportRoster(ctx, []byte(rosterCSV), decode.KindCSV)

			Convey("Then exactly one team should be created", func() {
				So(err, ShouldBeNil)
				So(report.Created, ShouldEqual, 1)
				So(report.Skipped, ShouldEqual, 0)
				So(len(report.Errors), ShouldEqual, 0)
				So(len(report.Teams), ShouldEqual, 1)
			})

			Convey("Then the draft should carry the grouped roster", func() {
				So(err, ShouldBeNil)
				team := report.Teams[0]
				So(team.TeamID, ShouldEqual, "TYDT-667")
				So(team.Name, ShouldEqual, "Rockets")
				So(team.LeaderName, ShouldEqual, "Alice")
				So(team.LeaderEmail, ShouldEqual, "alice@example.com")
				So(len(team.Members), ShouldEqual, 3)
				So(team.Members[0].IsLeader, ShouldBeTrue)
			})

			Convey("And when the same file is imported again", func() {
				again, err := svc.ImportRoster(ctx, []byte(rosterCSV), decode.KindCSV)

				Convey("Then the existing team should be skipped untouched", func() {
					So(err, ShouldBeNil)
					So(again.Created, ShouldEqual, 0)
					So(again.Skipped, ShouldEqual, 1)
					teams, _ := svc.Teams(ctx)
					So(len(teams), ShouldEqual, 1)
				})
			})
		})

		Convey("When the file cannot be decoded", func() {
			_, err := svc.ImportRoster(ctx, []byte{0xd0, 0xcf}, decode.KindXLS)

			Convey("Then the whole job should abort before any write", func() {
				So(err, ShouldNotBeNil)
				teams, _ := svc.Teams(ctx)
				So(len(teams), ShouldEqual, 0)
			})
		})

		Convey("When a draft has no usable leader email", func() {
			data := "TeamId,Team Name,Members\nT9,Ghosts,Nia\n"
			report, err := svc.ImportRoster(ctx, []byte(data), decode.KindCSV)

			Convey("Then the draft should be rejected silently", func() {
				So(err, ShouldBeNil)
				So(report.Created, ShouldEqual, 0)
				So(report.Skipped, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a store already holding the team under an alternate code", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		_, _ = store.Create(ctx, model.Team{ID: "registration-uuid", TeamID: "TYDT-667", Name: "Rockets"})
		svc := startService(ctx, service.WithStore(store))

		Convey("When importing a roster keyed by that code", func() {
			report, err := svc.ImportRoster(ctx, []byte(rosterCSV), decode.KindCSV)

			Convey("Then the ID match should win and the team should be skipped", func() {
				So(err, ShouldBeNil)
				So(report.Created, ShouldEqual, 0)
				So(report.Skipped, ShouldEqual, 1)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})
	})
}

func TestReconcileScores(t *testing.T) {
	Convey("Given a service with one imported team", t, func() {
		ctx := context.Background()
		svc := startService(ctx)
		_, err := svc.ImportRoster(ctx, []byte(rosterCSV), decode.KindCSV)
		So(err, ShouldBeNil)

		Convey("When reconciling a score sheet with the exact identifier", func() {
			report, err := svc.ReconcileScores(ctx, []byte("TeamId,Score\nTYDT-667,87.5\n"), decode.KindCSV)

			Convey("Then the score should land on the team", func() {
				So(err, ShouldBeNil)
				So(report.Updated, ShouldEqual, 1)
				So(len(report.Errors), ShouldEqual, 0)
				So(len(report.Missing), ShouldEqual, 0)
				teams, _ := svc.Teams(ctx)
				So(teams[0].Score, ShouldEqual, 87.5)
			})
		})

		Convey("When the sheet uses a bare numeric suffix", func() {
			report, err := svc.ReconcileScores(ctx, []byte("TeamId,Score\n667,42\n"), decode.KindCSV)

			Convey("Then the resolver cascade should still match", func() {
				So(err, ShouldBeNil)
				So(report.Updated, ShouldEqual, 1)
				teams, _ := svc.Teams(ctx)
				So(teams[0].Score, ShouldEqual, 42.0)
			})
		})

		Convey("When an identifier resolves nowhere", func() {
			report, err := svc.ReconcileScores(ctx, []byte("TeamId,Score\nZZZ-999,10\n"), decode.KindCSV)

			Convey("Then it should be reported missing", func() {
				So(err, ShouldBeNil)
				So(report.Updated, ShouldEqual, 0)
				So(report.Missing, ShouldResemble, []string{"ZZZ-999"})
			})
		})

		Convey("When the score cell is unparseable", func() {
			report, err := svc.ReconcileScores(ctx, []byte("TeamId,Score\nTYDT-667,n/a\n"), decode.KindCSV)

			Convey("Then it should count as a parse failure and write nothing", func() {
				So(err, ShouldBeNil)
				So(report.Updated, ShouldEqual, 0)
				So(report.ParseFailures, ShouldEqual, 1)
				teams, _ := svc.Teams(ctx)
				So(teams[0].Score, ShouldEqual, 0.0)
			})
		})

		Convey("When the score cell is empty", func() {
			report, err := svc.ReconcileScores(ctx, []byte("TeamId,Score\nTYDT-667,\n"), decode.KindCSV)

			Convey("Then the row should be skipped silently", func() {
				So(err, ShouldBeNil)
				So(report.Updated, ShouldEqual, 0)
				So(report.ParseFailures, ShouldEqual, 0)
				So(len(report.Missing), ShouldEqual, 0)
			})
		})

		Convey("When the sheet cannot be decoded", func() {
			_, err := svc.ReconcileScores(ctx, []byte("not a zip"), decode.KindXLSX)

			Convey("Then the whole job should abort", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given a store whose writes fail", t, func() {
		ctx := context.Background()
		store := &failingStore{MemStore: repository.NewMemStore()}
		_, _ = store.MemStore.Create(ctx, model.Team{ID: "T1", TeamID: "T1", Name: "Alpha"})
		svc := startService(ctx, service.WithStore(store))

		Convey("When reconciling two rows", func() {
			report, err := svc.ReconcileScores(ctx,
				[]byte("TeamId,Score\nT1,10\nT1,20\n"), decode.KindCSV)

			Convey("Then failures should be tolerated per row, not abort the job", func() {
				So(err, ShouldBeNil)
				So(report.Updated, ShouldEqual, 0)
				So(len(report.Errors), ShouldEqual, 2)
			})
		})
	})
}

func TestErrorListCap(t *testing.T) {
	Convey("Given a service with a one-entry error cap and a failing store", t, func() {
		ctx := context.Background()
		store := &failingStore{MemStore: repository.NewMemStore()}
		_, _ = store.MemStore.Create(ctx, model.Team{ID: "T1", TeamID: "T1", Name: "Alpha"})
		svc := startService(ctx, service.WithStore(store), service.WithErrorListCap(1))

		Convey("When more rows fail than the cap allows", func() {
			report, err := svc.ReconcileScores(ctx,
				[]byte("TeamId,Score\nT1,10\nT1,20\nT1,30\n"), decode.KindCSV)

			Convey("Then the error list should stop growing at the cap", func() {
				So(err, ShouldBeNil)
				So(len(report.Errors), ShouldEqual, 1)
			})
		})
	})
}

// failingStore delegates to a MemStore but refuses every write.
type failingStore struct {
	*repository.MemStore
}

var errWriteRefused = errors.New("write refused")

func (f *failingStore) Create(ctx context.Context, t model.Team) (model.Team, error) {
	return model.Team{}, errWriteRefused
}

func (f *failingStore) Replace(ctx context.Context, t model.Team) (model.Team, error) {
	return model.Team{}, errWriteRefused
}
