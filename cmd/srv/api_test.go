package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/questx-lab/tournament/internal/domain"
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/internal/model"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/numberutil"
	"github.com/questx-lab/tournament/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, gateway *testutil.MockGateway) *httptest.Server {
	s := &srv{ctx: testutil.MockContext(), gateway: gateway}
	s.tournamentDomain = domain.NewTournamentDomain(gateway)
	s.playerDomain = domain.NewPlayerDomain(gateway)
	s.boosterBallDomain = domain.NewBoosterBallDomain(gateway)
	s.loadRouter()

	ts := httptest.NewServer(s.router.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func Test_api_HistoricalLeaderboard(t *testing.T) {
	player := common.HexToAddress(testutil.PlayerAddress)
	ts := newTestServer(t, &testutil.MockGateway{
		ReadCurrentTournamentFunc: func(ctx context.Context) (types.Tournament, error) {
			return types.Tournament{ID: 5, StartTime: 10, EndTime: 20, TimeRemaining: 5}, nil
		},
		ReadHistoricalLeaderboardFunc: func(ctx context.Context, id uint64) (types.TournamentLeaderboard, error) {
			return types.TournamentLeaderboard{
				Tournament: types.Tournament{ID: id, StartTime: 1, EndTime: 2},
				Entries:    []types.LeaderboardEntry{{Player: player, Score: numberutil.NewNumber(77)}},
			}, nil
		},
	})

	resp, err := http.Get(ts.URL + "/api/leaderboard/3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.GetLeaderboardByIDResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	require.False(t, body.Data.IsCurrentTournament)
	require.Equal(t, uint64(3), body.Data.Tournament.ID)
	require.Equal(t, testutil.PlayerAddress, body.Data.Leaderboard[0].Player)
	require.Equal(t, "77", body.Data.Leaderboard[0].Score.String())
}

func Test_api_InvalidAddress(t *testing.T) {
	gateway := &testutil.MockGateway{}
	ts := newTestServer(t, gateway)

	resp, err := http.Get(ts.URL + "/api/player/0x1234/mpx")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(errorx.InvalidAddress), body["code"])
	require.NotEmpty(t, body["error"])
	require.Zero(t, gateway.Calls.Load())
}

func Test_api_IncrementScore(t *testing.T) {
	hash := common.HexToHash("0xbeef")
	ts := newTestServer(t, &testutil.MockGateway{
		SubmitScoreIncrementFunc: func(context.Context, uint64, uint64, string) (types.Confirmation, error) {
			return types.Confirmation{TxHash: hash}, nil
		},
	})

	payload := `{"points": 15, "boosterBallsUsed": 1, "userAddress": "` + testutil.PlayerAddress + `"}`
	resp, err := http.Post(ts.URL+"/api/score/increment", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.IncrementScoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, model.IncrementScoreResponse{Success: true, TransactionHash: hash.Hex()}, body)
}

func Test_api_ResetReverted(t *testing.T) {
	ts := newTestServer(t, &testutil.MockGateway{
		SubmitTournamentResetFunc: func(context.Context) (types.Confirmation, error) {
			return types.Confirmation{}, errorx.Reverted("Tournament not ended")
		},
	})

	resp, err := http.Post(ts.URL+"/api/tournament/reset", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Tournament not ended", body["reason"])
}

func Test_api_PurchaseData(t *testing.T) {
	ts := newTestServer(t, &testutil.MockGateway{})

	payload := `{"userAddress": "` + testutil.PlayerAddress + `"}`
	resp, err := http.Post(ts.URL+"/api/boosterball/purchase-data", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "10000000000000000000", body["transaction"]["value"])
	require.Equal(t, "300000", body["transaction"]["gasLimit"])
	require.Equal(t, float64(testutil.ChainID), body["transaction"]["chainId"])
}

func Test_srv_close(t *testing.T) {
	// Nothing prepared yet.
	(&srv{}).close()

	closed, synced := false, false
	s := &srv{
		ethClient:  &testutil.MockEthClient{CloseFunc: func() { closed = true }},
		syncLogger: func() error { synced = true; return nil },
	}
	s.close()
	require.True(t, closed)
	require.True(t, synced)
}

func Test_printStatus(t *testing.T) {
	var buf bytes.Buffer
	printStatus(&buf, model.Tournament{ID: 7, StartTime: 1, EndTime: 9, TimeRemaining: 4}, []model.LeaderboardEntry{
		{Player: testutil.PlayerAddress, Score: numberutil.NewNumber(12)},
	})

	out := buf.String()
	require.Contains(t, out, "Tournament")
	require.Contains(t, out, testutil.PlayerAddress)
	require.Contains(t, out, "12")
}
