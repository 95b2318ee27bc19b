// internal/system/collision.go
package system

import (
	"math"
	"sort"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

// предел числа контактов на один свип
const (
	maxSweepContacts = 100
	sweepSlack       = 1.05 // небольшой запас длины свипа на тик
)

type hitKind int

const (
	hitPaddle hitKind = iota
	hitWall
	hitEnemy
)

type sweepHit struct {
	id      types.EntityID
	kind    hitKind
	contact geometry.Contact
}

// CollisionSystem — непрерывные столкновения мячей: свип окружности мяча
// вдоль направления движения и разрешение контактов с ракеткой, стенами
// и врагами. Направление и скорость перетираются последним применимым
// правилом: порядок обхода контактов сохраняется сознательно.
type CollisionSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	shake      *ShakeSystem
}

func NewCollisionSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, shake *ShakeSystem) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, dispatcher: dispatcher, shake: shake}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	for ballID, ball := range s.ecs.Balls {
		pos, hasPos := s.ecs.Positions[ballID]
		vel, hasVel := s.ecs.Velocities[ballID]
		if !hasPos || !hasVel {
			continue
		}
		if component.NegligibleSpeed(vel.Speed) || vel.Dir == (geometry.Vec2{}) {
			// неподвижный мяч: нормализация направления недостижима
			continue
		}

		origin := pos.Vec()
		dir := vel.Dir.Normalize()
		sweepDist := vel.Speed * sweepSlack * deltaTime

		for _, hit := range s.sweep(origin, ball.Radius, dir, sweepDist) {
			switch hit.kind {
			case hitPaddle:
				s.resolvePaddle(ballID, ball, pos, vel, hit)
			case hitWall:
				s.resolveWall(ballID, ball, vel, hit)
			case hitEnemy:
				s.resolveEnemy(ballID, vel, hit)
			}
		}
	}
}

// sweep собирает контакты по всем коллайдерам, ближние первыми
func (s *CollisionSystem) sweep(origin geometry.Vec2, radius float64, dir geometry.Vec2, dist float64) []sweepHit {
	var hits []sweepHit

	for id, paddle := range s.ecs.Paddles {
		a, b := paddleSegment(paddle)
		if c, ok := geometry.SweepCircleCapsule(origin, radius, dir, dist, a, b, config.PaddleCollRadius); ok {
			hits = append(hits, sweepHit{id: id, kind: hitPaddle, contact: c})
		}
	}
	for id, wall := range s.ecs.Walls {
		center := geometry.V(wall.CenterX, wall.CenterY)
		if c, ok := geometry.SweepCircleInsideCircle(origin, radius, dir, dist, center, wall.Radius); ok {
			hits = append(hits, sweepHit{id: id, kind: hitWall, contact: c})
		}
	}
	for id, enemy := range s.ecs.Enemies {
		if s.ecs.Removed(id) {
			continue
		}
		epos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if c, ok := geometry.SweepCircleCircle(origin, radius, dir, dist, epos.Vec(), enemy.Radius); ok {
			hits = append(hits, sweepHit{id: id, kind: hitEnemy, contact: c})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].contact.Distance < hits[j].contact.Distance
	})
	if len(hits) > maxSweepContacts {
		hits = hits[:maxSweepContacts]
	}
	return hits
}

// paddleSegment возвращает концы осевого отрезка капсулы ракетки
func paddleSegment(paddle *component.Paddle) (geometry.Vec2, geometry.Vec2) {
	outward := geometry.FromAngle(paddle.Rotation)
	tangent := outward.Perp()
	center := outward.Scale(paddle.OrbitRadius)
	half := config.PaddleCollHeight / 2
	return center.Sub(tangent.Scale(half)), center.Add(tangent.Scale(half))
}

func (s *CollisionSystem) resolvePaddle(ballID types.EntityID, ball *component.Ball, pos *component.Position, vel *component.Velocity, hit sweepHit) {
	paddle := s.ecs.Paddles[hit.id]
	mode := s.ecs.PaddleModes[hit.id]
	ammo := s.ecs.PaddleAmmos[hit.id]
	if paddle == nil || mode == nil || ammo == nil {
		return
	}
	if mode.Kind == component.PaddleCaptured {
		// пойманный мяч физически пристыкован, контакт не разрешается
		return
	}
	if s.ecs.GameTime < ball.LastReflectionTime+config.PaddleDebounce {
		// дребезг: повторный контакт игнорируется
		return
	}

	outward := geometry.FromAngle(paddle.Rotation)
	tangent := outward.Perp()
	center := outward.Scale(paddle.OrbitRadius)
	rel := hit.contact.Point.Sub(center)
	localX := rel.Dot(outward)
	localY := rel.Dot(tangent)

	// нормированная точка контакта вдоль ракетки; порог сверху — единица,
	// чтобы скругление коллайдера не раздувало угол
	ratio := localY / (config.PaddleCollHeight / 2)
	angleFactor := math.Pow(geometry.Clamp(math.Abs(ratio), 0, 1), 1.5)
	// удар с внешней стороны отражается обратно наружу
	originRot := 0.0
	if localX > 0 {
		originRot = 180.0
	}
	angleDeg := angleFactor*geometry.Sign(ratio)*config.MaxReflectionAngle*geometry.Sign(localX) + originRot
	angleRad := angleDeg * math.Pi / 180.0

	if mode.Kind == component.PaddleCapture {
		// поимка мяча: пристыковка к ракетке, движение приостановлено
		mode.Kind = component.PaddleCaptured
		mode.BallID = ballID
		mode.ShootRotation = angleRad
		s.ecs.Parents[ballID] = &component.Parent{ID: hit.id}
		pos.Set(PaddleWorld(paddle, geometry.Vec2{}))
		return
	}

	// отражение
	s.shake.AddTrauma(0.15 + 0.15*vel.SpeedFactor(config.BallBaseSpeed, config.BallBaseSpeed*2.0))
	spawnEffect(s.ecs, component.EffectReflection, hit.contact.Point, paddle.Rotation, 30)

	// кламп снизу нужен мячу, вернувшемуся из зоны ядра с упавшей скоростью
	vel.Speed = geometry.Clamp(vel.Speed*config.PaddleSpeedMult, config.BallBaseSpeed, config.BallMaxSpeed)
	vel.Dir = outward.Scale(-1).Rotate(angleRad)

	ball.ReflectionCount++
	ammo.Offset(ball.AmmoBonus())

	cooldown := 0.1 + vel.SpeedFactor(config.BallBaseSpeed, config.BallBaseSpeed*1.5)*0.2
	ArmCooldown(s.ecs, ballID, component.CooldownMovementPaused, cooldown)
	ball.LastReflectionTime = s.ecs.GameTime + cooldown

	paddle.LastHitTime = s.ecs.GameTime
	s.dispatcher.Dispatch(event.Event{Type: event.BallReflected, Data: ballID})
}

func (s *CollisionSystem) resolveWall(ballID types.EntityID, ball *component.Ball, vel *component.Velocity, hit sweepHit) {
	if s.ecs.GameTime < ball.LastReflectionTime+config.WallDebounce {
		return
	}

	speedFactor := vel.SpeedFactor(config.BallBaseSpeed*0.5, config.BallBaseSpeed*2.0)
	s.shake.AddTrauma(0.1 + 0.225*speedFactor)

	cooldown := 0.085 + speedFactor*0.125
	ArmCooldown(s.ecs, ballID, component.CooldownMovementPaused, cooldown)
	s.ecs.SeekTargets[ballID] = struct{}{}
	ball.LastReflectionTime = s.ecs.GameTime + cooldown

	vel.Speed *= config.WallSpeedMult
	vel.Dir = vel.Dir.Normalize().Reflect(hit.contact.Normal)
}

func (s *CollisionSystem) resolveEnemy(ballID types.EntityID, vel *component.Velocity, hit sweepHit) {
	s.ecs.QueueRemove(hit.id)
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: hit.id})
	s.shake.AddTrauma(config.EnemyTrauma)
	spawnEffect(s.ecs, component.EffectEnemyBurst, hit.contact.Point, 0, config.EnemyRadius*1.5)

	speedFactor := vel.SpeedFactor(config.BallBaseSpeed*0.5, config.BallBaseSpeed*1.75)
	cooldown := 0.08 + speedFactor*0.12
	ArmCooldown(s.ecs, ballID, component.CooldownMovementPaused, cooldown)
	s.ecs.SeekTargets[ballID] = struct{}{}
}

func spawnEffect(ecs *entity.ECS, kind component.EffectKind, at geometry.Vec2, rotation, radius float64) {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Effects[id] = &component.Effect{
		Kind:     kind,
		Lifetime: 0.35,
		Radius:   radius,
		Rotation: rotation,
	}
}
