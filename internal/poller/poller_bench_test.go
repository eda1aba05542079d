package poller

import (
	"context"
	"strconv"
	"testing"
	"time"

	appstats "github.com/Bazz30/NRL/internal/app/stats"
	domainstats "github.com/Bazz30/NRL/internal/domain/stats"
	"github.com/Bazz30/NRL/internal/store"
	"github.com/Bazz30/NRL/internal/teststubs"
)

func BenchmarkPollerFetchOnce(b *testing.B) {
	players := make(map[string]domainstats.Record, 450)
	for i := 0; i < 450; i++ {
		players[strconv.Itoa(i)] = domainstats.Record{domainstats.Tackle: 20, domainstats.MetresGained: 90}
	}
	provider := &teststubs.StubProvider{Stats: map[int]domainstats.RoundStats{
		12: {Round: 12, Players: players},
	}}
	svc := appstats.NewService(store.NewMemoryStore(), nil, nil)
	p := New(provider, teststubs.StubRounds{Current: 12}, nil, svc, nil, nil, time.Minute)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.fetchOnce(context.Background())
	}
}
