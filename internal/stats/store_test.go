package stats

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type memBackend struct {
	data   map[string][]byte
	getErr error
	putErr error
	puts   int
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string][]byte{}}
}

func (m *memBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBackend) Put(_ context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty backend", t, func() {
		backend := newMemBackend()
		s := Load(ctx, backend)

		Convey("The aggregate starts at zero without writing", func() {
			So(s.Aggregate(), ShouldResemble, Zero())
			So(backend.puts, ShouldEqual, 0)
		})

		Convey("Each result is persisted synchronously", func() {
			So(s.RecordResult(true, 3), ShouldBeNil)
			So(backend.puts, ShouldEqual, 1)
			So(s.RecordResult(false, 0), ShouldBeNil)
			So(backend.puts, ShouldEqual, 2)
			So(string(backend.data[Key]), ShouldEqual,
				`{"gamesPlayed":2,"gamesWon":1,"currentStreak":0,"maxStreak":1,"guessDistribution":[0,0,1,0,0,0]}`)

			Convey("And a fresh load sees the same aggregate", func() {
				again := Load(ctx, backend)
				So(again.Aggregate(), ShouldResemble, s.Aggregate())
			})

			Convey("And reset zeroes and persists", func() {
				So(s.Reset(), ShouldBeNil)
				So(Load(ctx, backend).Aggregate(), ShouldResemble, Zero())
			})
		})

		Convey("Aggregate returns a copy", func() {
			agg := s.Aggregate()
			agg.GuessDistribution[0] = 42
			So(s.Aggregate().GuessDistribution[0], ShouldEqual, 0)
		})

		Convey("A failed write is reported but the memory copy advances", func() {
			backend.putErr = errors.New("disk full")
			So(s.RecordResult(true, 1), ShouldNotBeNil)
			So(s.Aggregate().GamesPlayed, ShouldEqual, 1)
		})
	})

	Convey("Given unusable stored data", t, func() {
		cases := []struct {
			name string
			raw  string
		}{
			{"garbage", `not json`},
			{"short histogram", `{"gamesPlayed":1,"gamesWon":1,"currentStreak":1,"maxStreak":1,"guessDistribution":[1]}`},
			{"negative counter", `{"gamesPlayed":-3,"gamesWon":0,"currentStreak":0,"maxStreak":0,"guessDistribution":[0,0,0,0,0,0]}`},
			{"more wins than games", `{"gamesPlayed":1,"gamesWon":2,"currentStreak":0,"maxStreak":0,"guessDistribution":[0,0,0,0,0,0]}`},
		}
		for _, tc := range cases {
			backend := newMemBackend()
			backend.data[Key] = []byte(tc.raw)

			Convey("Load falls back to zero for "+tc.name, func() {
				So(Load(ctx, backend).Aggregate(), ShouldResemble, Zero())
				_, err := Read(ctx, backend)
				So(errors.Is(err, ErrStatsLoad), ShouldBeTrue)
			})
		}

		Convey("A read error also yields zero", func() {
			backend := newMemBackend()
			backend.getErr = errors.New("locked")
			So(Load(ctx, backend).Aggregate(), ShouldResemble, Zero())
		})
	})
}
