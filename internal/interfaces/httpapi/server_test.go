package httpapi

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/memory"
	"github.com/joehodgson0/teamhub/internal/platform/cache"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
	"github.com/joehodgson0/teamhub/internal/usecase"
)

const testInternalJobToken = "test-job-token"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	userRepo := memory.NewUserRepository(memory.SeedUsers())
	clubRepo := memory.NewClubRepository(memory.SeedClubs())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	resultRepo := memory.NewResultRepository(memory.SeedResults())
	postRepo := memory.NewPostRepository(memory.SeedPosts())
	awardRepo := memory.NewAwardRepository(memory.SeedAwards())

	gen := idgen.NewRandomGenerator()
	authService := usecase.NewAuthService(userRepo, gen, nil)
	clubService := usecase.NewClubService(clubRepo, userRepo, gen, cache.NewStore(0), nil)
	teamService := usecase.NewTeamService(teamRepo, clubRepo, userRepo, playerRepo, gen, nil)
	playerService := usecase.NewPlayerService(playerRepo, teamRepo, clubRepo, gen, nil)
	eventService := usecase.NewEventService(eventRepo, teamRepo, playerRepo, gen, nil)
	resultService := usecase.NewResultService(eventRepo, teamRepo, playerRepo, resultRepo, nil, nil)
	postService := usecase.NewPostService(postRepo, teamRepo, playerRepo, nil, gen, nil)
	awardService := usecase.NewAwardService(awardRepo, teamRepo, playerRepo, nil)
	dashboardService := usecase.NewDashboardService(teamService, eventService, postService, resultService, nil)

	sessions := NewSessionManager([]byte("0123456789abcdef0123456789abcdef"), false)
	handler := NewHandler(
		authService,
		clubService,
		teamService,
		playerService,
		eventService,
		resultService,
		postService,
		awardService,
		dashboardService,
		sessions,
		nil,
	)

	server := httptest.NewServer(NewRouter(handler, sessions, authService, nil, nil, testInternalJobToken))
	t.Cleanup(server.Close)
	return server
}

func newSessionClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("new cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func login(t *testing.T, client *http.Client, baseURL, email string) {
	t.Helper()

	body := `{"email":"` + email + `","password":"` + memory.SeedPassword + `"}`
	resp, err := client.Post(baseURL+"/v1/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", resp.StatusCode)
	}
}

func decodeData(t *testing.T, resp *http.Response) any {
	t.Helper()

	var body map[string]any
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body["data"]
}

func TestRouter_RequiresSession(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v1/dashboard")
	if err != nil {
		t.Fatalf("dashboard request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a session, got %d", resp.StatusCode)
	}
}

func TestRouter_LoginAndMe(t *testing.T) {
	server := newTestServer(t)
	client := newSessionClient(t)

	login(t, client, server.URL, "dana.coach@riverside.test")

	resp, err := client.Get(server.URL + "/v1/me")
	if err != nil {
		t.Fatalf("me request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	data, ok := decodeData(t, resp).(map[string]any)
	if !ok {
		t.Fatalf("expected user object in data")
	}
	if got, _ := data["email"].(string); got != "dana.coach@riverside.test" {
		t.Fatalf("expected coach email, got %v", data["email"])
	}
}

func TestRouter_SubmitResultAndListTeams(t *testing.T) {
	server := newTestServer(t)
	client := newSessionClient(t)

	login(t, client, server.URL, "dana.coach@riverside.test")

	payload := `{
		"teamId": "team-riverside-u10",
		"homeTeamGoals": 0,
		"awayTeamGoals": 2,
		"playerStats": {"pl-amelia": {"goals": 1, "assists": 0}}
	}`
	resp, err := client.Post(server.URL+"/v1/events/ev-u10-match-003/result", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("submit result request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	data, ok := decodeData(t, resp).(map[string]any)
	if !ok {
		t.Fatalf("expected result object in data")
	}
	if got, _ := data["outcome"].(string); got != "win" {
		t.Fatalf("expected outcome win, got %v", data["outcome"])
	}

	teamsResp, err := client.Get(server.URL + "/v1/teams")
	if err != nil {
		t.Fatalf("list teams request: %v", err)
	}
	defer teamsResp.Body.Close()

	teams, ok := decodeData(t, teamsResp).([]any)
	if !ok {
		t.Fatalf("expected teams array in data")
	}
	for _, raw := range teams {
		team, _ := raw.(map[string]any)
		if team["id"] == "team-riverside-u10" {
			if got, _ := team["wins"].(float64); got != 2 {
				t.Fatalf("expected u10 wins 2 after submission, got %v", team["wins"])
			}
			return
		}
	}
	t.Fatalf("u10 team missing from list")
}

func TestRouter_ParentCannotSubmitResult(t *testing.T) {
	server := newTestServer(t)
	client := newSessionClient(t)

	login(t, client, server.URL, "sam.parent@riverside.test")

	payload := `{"teamId":"team-riverside-u10","homeTeamGoals":1,"awayTeamGoals":0}`
	resp, err := client.Post(server.URL+"/v1/events/ev-u10-match-001/result", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("submit result request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for parent submission, got %d", resp.StatusCode)
	}
}

func TestRouter_InternalRecomputeRequiresToken(t *testing.T) {
	server := newTestServer(t)
	url := server.URL + "/v1/internal/clubs/" + memory.SeedClubID + "/recompute-records"

	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		t.Fatalf("recompute request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-Internal-Job-Token", testInternalJobToken)

	authResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("recompute with token: %v", err)
	}
	defer authResp.Body.Close()

	if authResp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d", authResp.StatusCode)
	}

	data, ok := decodeData(t, authResp).(map[string]any)
	if !ok {
		t.Fatalf("expected summary object in data")
	}
	if got, _ := data["team_count"].(float64); got != 2 {
		t.Fatalf("expected team_count 2, got %v", data["team_count"])
	}
}

func TestRouter_Logout(t *testing.T) {
	server := newTestServer(t)
	client := newSessionClient(t)

	login(t, client, server.URL, "sam.parent@riverside.test")

	resp, err := client.Post(server.URL+"/v1/auth/logout", "application/json", nil)
	if err != nil {
		t.Fatalf("logout request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected logout status 200, got %d", resp.StatusCode)
	}

	meResp, err := client.Get(server.URL + "/v1/me")
	if err != nil {
		t.Fatalf("me request: %v", err)
	}
	defer meResp.Body.Close()

	if meResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after logout, got %d", meResp.StatusCode)
	}
}
