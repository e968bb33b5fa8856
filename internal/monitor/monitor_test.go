package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pldsys/pfbus/internal/device"
	"github.com/pldsys/pfbus/internal/protocol/params"
	"github.com/pldsys/pfbus/internal/sim"
)

func testPoller(t *testing.T) (*Poller, *sim.Instrument, *sim.Instrument) {
	t.Helper()

	pumpSim := sim.New(1, params.Turbopump)
	pumpSim.Set(params.TurboActualSpd, "001500")
	pumpSim.Set(params.TurboDrvPower, "012000")
	pumpSim.Set(params.TurboErrorCode, "000000")
	pump, err := device.NewPump(pumpSim, 1)
	if err != nil {
		t.Fatal(err)
	}

	gaugeSim := sim.New(2, params.Gauge)
	gaugeSim.Set(params.GaugePressure, "100018")
	gaugeSim.Set(params.GaugeErrorCode, "000000")
	gauge, err := device.NewGauge(gaugeSim, 2)
	if err != nil {
		t.Fatal(err)
	}

	p := NewPoller(
		[]PumpSource{{Name: "turbo-main", Dev: pump}},
		[]GaugeSource{{Name: "chamber-gauge", Dev: gauge}},
		time.Second, zerolog.Nop(),
	)
	return p, pumpSim, gaugeSim
}

func TestPollOnceCollectsReadings(t *testing.T) {
	p, _, _ := testPoller(t)
	p.PollOnce()

	r, ok := p.Reading("turbo-main")
	if !ok || !r.Online {
		t.Fatalf("pump reading: %+v, %v", r, ok)
	}
	if r.SpeedHz == nil || *r.SpeedHz != 1500 {
		t.Fatalf("pump speed: %+v", r.SpeedHz)
	}
	if r.Fault {
		t.Fatalf("idle pump flagged as faulted: %+v", r)
	}

	g, ok := p.Reading("chamber-gauge")
	if !ok || !g.Online || g.Pressure == nil {
		t.Fatalf("gauge reading: %+v, %v", g, ok)
	}
	if *g.Pressure != 0.01 {
		t.Fatalf("gauge pressure = %g", *g.Pressure)
	}
}

func TestPollMarksDeadInstrumentOffline(t *testing.T) {
	p, pumpSim, _ := testPoller(t)
	pumpSim.SetSilent(true)
	p.PollOnce()

	r, ok := p.Reading("turbo-main")
	if !ok || r.Online {
		t.Fatalf("silent pump still online: %+v", r)
	}
	if r.LastError == "" {
		t.Fatal("offline reading carries no error")
	}
}

func TestPollReportsFaultCondition(t *testing.T) {
	p, pumpSim, _ := testPoller(t)
	pumpSim.Set(params.TurboErrorCode, "Err041")
	p.PollOnce()

	r, _ := p.Reading("turbo-main")
	if !r.Fault || r.Condition != "drive fault" {
		t.Fatalf("fault not surfaced: %+v", r)
	}
}

func TestStatusRoutes(t *testing.T) {
	router := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /status = %d body=%s", rr.Code, rr.Body.String())
	}
	var body struct {
		Instruments []Reading `json:"instruments"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Instruments) != 2 {
		t.Fatalf("instruments: %+v", body.Instruments)
	}
	// Sorted by name: chamber-gauge before turbo-main.
	if body.Instruments[0].Name != "chamber-gauge" {
		t.Fatalf("order: %+v", body.Instruments)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status/turbo-main", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /status/turbo-main = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("GET /status/nope = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", rr.Code)
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	p, _, _ := testPoller(t)
	p.PollOnce()
	srv := NewServer(":0", p, nil)
	srv.RegisterRoutes()
	return srv.Router()
}
