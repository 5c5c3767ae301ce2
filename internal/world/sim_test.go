package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hitsquads/internal/model"
)

func newTestSim(t *testing.T) *Sim {
	t.Helper()
	s := NewSim(DefaultSimConfig())
	s.SetSubject(model.NewPosition(0, 0, 0), false)
	return s
}

func TestSim_CreateAgent(t *testing.T) {
	s := newTestSim(t)

	a, err := s.CreateAgent("G_M_Y_FAMCA_01", model.NewPosition(10, 0, 0))
	require.NoError(t, err)
	require.True(t, a.Valid())
	assert.True(t, s.AgentExists(a))
	assert.True(t, s.AgentAlive(a))

	s.Kill(a)
	assert.True(t, s.AgentExists(a))
	assert.False(t, s.AgentAlive(a))
}

func TestSim_InvalidModel(t *testing.T) {
	s := newTestSim(t)
	s.RejectModel("nope")

	_, err := s.CreateAgent("NOPE", model.Position{})
	require.ErrorIs(t, err, ErrInvalidModel)

	_, err = s.CreateVehicle("nope", model.Position{})
	require.ErrorIs(t, err, ErrInvalidModel)

	_, err = s.CreateAgent("", model.Position{})
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Zero(t, s.AgentCount())
}

func TestSim_FailCreationsAfter(t *testing.T) {
	s := newTestSim(t)
	s.FailCreationsAfter(1)

	a, err := s.CreateAgent("A", model.Position{})
	require.NoError(t, err)
	assert.True(t, a.Valid())

	b, err := s.CreateAgent("A", model.Position{})
	require.NoError(t, err)
	assert.False(t, b.Valid())
}

func TestSim_Seats(t *testing.T) {
	s := newTestSim(t)

	v, err := s.CreateVehicle("EMPEROR", model.Position{})
	require.NoError(t, err)

	assert.True(t, s.SeatIsFree(v, model.SeatDriver))
	for seat := model.Seat(0); seat < 3; seat++ {
		assert.True(t, s.SeatIsFree(v, seat), "seat %d", seat)
	}
	assert.False(t, s.SeatIsFree(v, 3))

	a, err := s.CreateAgent("A", model.Position{})
	require.NoError(t, err)
	s.WarpIntoSeat(a, v, model.SeatDriver)

	assert.False(t, s.SeatIsFree(v, model.SeatDriver))
	assert.True(t, s.AgentInVehicle(a))

	bike, err := s.CreateVehicle("bmx", model.Position{})
	require.NoError(t, err)
	assert.False(t, s.SeatIsFree(bike, 0))
}

func TestSim_ColorsKeepUnsetChannel(t *testing.T) {
	s := newTestSim(t)
	v, err := s.CreateVehicle("EMPEROR", model.Position{})
	require.NoError(t, err)

	s.SetVehicleColors(v, 53, -1)
	s.SetVehicleColors(v, -1, 88)

	state, ok := s.Vehicle(v)
	require.True(t, ok)
	assert.Equal(t, 53, state.Primary)
	assert.Equal(t, 88, state.Secondary)
}

func TestSim_MarkerLifecycle(t *testing.T) {
	s := newTestSim(t)
	a, err := s.CreateAgent("A", model.NewPosition(5, 5, 0))
	require.NoError(t, err)

	m, ok := s.AttachAgentMarker(a)
	require.True(t, ok)
	s.SetMarkerAlpha(m, 400)

	state, ok := s.Marker(m)
	require.True(t, ok)
	assert.Equal(t, 255, state.Alpha)

	s.Despawn(a)
	assert.False(t, s.MarkerExists(m))

	// Writes to a deleted marker are no-ops.
	s.SetMarkerAlpha(m, 10)
	s.DeleteMarker(m)
	assert.Zero(t, s.MarkerCount())
}

func TestSim_AdvanceMovesEngagedAgents(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.KillChance = 0
	s := NewSim(cfg)
	s.SetSubject(model.NewPosition(0, 0, 0), false)

	a, err := s.CreateAgent("A", model.NewPosition(100, 0, 0))
	require.NoError(t, err)
	s.AssignTask(a, Task{Kind: TaskEngageSubject})

	s.Advance(time.Second)

	assert.InDelta(t, 94, s.AgentPosition(a).X, 0.01)
}

func TestSim_AdvanceDespawnsReleased(t *testing.T) {
	s := newTestSim(t)

	near, err := s.CreateAgent("A", model.NewPosition(10, 0, 0))
	require.NoError(t, err)
	far, err := s.CreateAgent("A", model.NewPosition(1000, 0, 0))
	require.NoError(t, err)
	m, _ := s.AttachAgentMarker(far)

	s.ReleaseAgent(near)
	s.ReleaseAgent(far)
	s.Advance(100 * time.Millisecond)

	assert.True(t, s.AgentExists(near))
	assert.False(t, s.AgentExists(far))
	assert.False(t, s.MarkerExists(m))
}

func TestSim_DriverClosesInAndDismounts(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.KillChance = 0
	s := NewSim(cfg)
	s.SetSubject(model.NewPosition(0, 0, 0), false)

	v, err := s.CreateVehicle("EMPEROR", model.NewPosition(60, 0, 0))
	require.NoError(t, err)
	d, err := s.CreateAgent("A", model.Position{})
	require.NoError(t, err)
	s.WarpIntoSeat(d, v, model.SeatDriver)
	s.AssignTask(d, Task{Kind: TaskDriveToSubject, Vehicle: v, Speed: 90})

	for range 5 {
		s.Advance(time.Second)
	}

	assert.False(t, s.AgentInVehicle(d))
	state, ok := s.Agent(d)
	require.True(t, ok)
	assert.Equal(t, TaskEngageSubject, state.Task.Kind)
}

func TestSim_WalletAndAlert(t *testing.T) {
	s := newTestSim(t)
	s.SetAlertLevel(3)
	s.ClearAlertLevel()
	s.GrantCurrency(2000)
	s.Notify("hello")

	assert.Zero(t, s.AlertLevel())
	assert.Equal(t, 2000, s.Balance())
	assert.Equal(t, []string{"hello"}, s.Notifications())
}

func TestSim_CombatReplaysWithSameSeed(t *testing.T) {
	run := func() map[model.AgentHandle]int {
		cfg := DefaultSimConfig()
		cfg.KillChance = 1.5
		s := NewSim(cfg)
		s.SetSubject(model.NewPosition(0, 0, 0), false)

		for i := range 16 {
			a, err := s.CreateAgent("A", model.NewPosition(float32(i%4), float32(i/4), 0))
			require.NoError(t, err)
			s.AssignTask(a, Task{Kind: TaskEngageSubject})
		}

		diedAt := make(map[model.AgentHandle]int)
		for step := 1; step <= 20; step++ {
			s.Advance(200 * time.Millisecond)
			for _, a := range s.AgentHandles() {
				if _, seen := diedAt[a]; !seen && !s.AgentAlive(a) {
					diedAt[a] = step
				}
			}
		}
		return diedAt
	}

	first := run()
	require.NotEmpty(t, first)
	for range 5 {
		assert.Equal(t, first, run())
	}
}
