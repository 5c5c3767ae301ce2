package world

import (
	"math"
	"time"

	"github.com/udisondev/hitsquads/internal/model"
)

// Noise sampling frequencies for the subject's wander path.
const (
	headingFrequency  = 0.02
	mobilityFrequency = 0.005
	mobileThreshold   = 0.62
	dismountRange     = 25
	engageStandoff    = 12
)

// Advance moves the simulated world forward by dt: the subject wanders
// along a noise path, engaged agents close in, agents near the subject may
// die, and released entities far from the subject are cleaned up.
func (s *Sim) Advance(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	s.elapsed += secs

	s.moveSubject(secs)
	s.moveVehicles(secs)
	s.moveAgents(secs)
	s.resolveCombat(secs)
	s.cleanupReleased()
}

func (s *Sim) moveSubject(secs float64) {
	if s.subjectPinned {
		return
	}

	s.subjectMobile = s.noise.Eval2(0, s.elapsed*mobilityFrequency) > mobileThreshold

	speed := s.cfg.SubjectWalkSpeed
	if s.subjectMobile {
		speed = s.cfg.SubjectDriveSpeed
	}
	angle := s.noise.Eval2(s.elapsed*headingFrequency, 0) * 4 * math.Pi
	s.subjectPos = s.subjectPos.Around(speed*float32(secs), angle)
}

func (s *Sim) moveVehicles(secs float64) {
	for _, veh := range s.vehicles {
		driver, ok := s.agents[veh.seats[model.SeatDriver]]
		if !ok || !driver.alive || driver.task.Kind != TaskDriveToSubject {
			continue
		}

		if veh.pos.DistanceTo(s.subjectPos) <= dismountRange {
			s.dismount(veh)
			continue
		}
		veh.pos = stepToward(veh.pos, s.subjectPos, s.cfg.VehicleSpeed*float32(secs))
	}
}

// dismount empties the vehicle; occupants switch to fighting on foot.
func (s *Sim) dismount(veh *simVehicle) {
	for seat, a := range veh.seats {
		if ag, ok := s.agents[a]; ok {
			ag.vehicle = 0
			ag.seat = model.SeatDriver
			ag.pos = veh.pos.Add(float32(seat)+2, 0, 0)
			if ag.alive && ag.task.Kind != TaskFleeSubject {
				ag.task = Task{Kind: TaskEngageSubject}
			}
		}
		delete(veh.seats, seat)
	}
}

func (s *Sim) moveAgents(secs float64) {
	step := s.cfg.AgentSpeed * float32(secs)
	for _, ag := range s.agents {
		if !ag.alive || ag.vehicle != 0 {
			continue
		}
		switch ag.task.Kind {
		case TaskEngageSubject:
			if ag.pos.DistanceTo(s.subjectPos) > engageStandoff {
				ag.pos = stepToward(ag.pos, s.subjectPos, step)
			}
		case TaskFleeSubject:
			ag.pos = stepToward(ag.pos, s.subjectPos, -step)
		}
	}
}

func (s *Sim) resolveCombat(secs float64) {
	chance := s.cfg.KillChance * secs
	// Sorted so a fixed seed replays the same deaths.
	for _, a := range s.AgentHandles() {
		ag := s.agents[a]
		if !ag.alive || ag.task.Kind != TaskEngageSubject {
			continue
		}
		if s.AgentPosition(a).DistanceTo(s.subjectPos) > s.cfg.KillRange {
			continue
		}
		if s.rng.Float64() < chance {
			ag.alive = false
			ag.health = 0
		}
	}
}

func (s *Sim) cleanupReleased() {
	for a, ag := range s.agents {
		if !ag.released {
			continue
		}
		if !ag.alive || s.AgentPosition(a).DistanceTo(s.subjectPos) > s.cfg.DespawnRange {
			s.Despawn(a)
		}
	}

	for v, veh := range s.vehicles {
		if !veh.released || len(veh.seats) > 0 {
			continue
		}
		if veh.pos.DistanceTo(s.subjectPos) > s.cfg.DespawnRange {
			delete(s.vehicles, v)
			for m, mk := range s.markers {
				if mk.vehicle == v {
					delete(s.markers, m)
				}
			}
		}
	}
}

// stepToward moves from toward to by dist (negative moves away).
func stepToward(from, to model.Position, dist float32) model.Position {
	d := from.DistanceTo(to)
	if d == 0 {
		return from
	}
	if dist > d {
		return to
	}
	k := dist / d
	return from.Add((to.X-from.X)*k, (to.Y-from.Y)*k, 0)
}
