// internal/system/gun.go
package system

import (
	"sort"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

// GunInput — срез ввода для пушки за один тик
type GunInput struct {
	Fire          bool // кнопка выстрела нажата в этом тике
	ToggleCapture bool // переключить режим захвата
}

// GunSystem обслуживает пушку ракетки: выстрелы с расходом боезапаса,
// холостой щелчок при пустом магазине, переключение режима захвата,
// выпуск пойманного мяча и полёт снарядов до врага или края поля.
type GunSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	shake      *ShakeSystem
}

func NewGunSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, shake *ShakeSystem) *GunSystem {
	return &GunSystem{ecs: ecs, dispatcher: dispatcher, shake: shake}
}

func (s *GunSystem) Update(deltaTime float64, input GunInput) {
	for paddleID, paddle := range s.ecs.Paddles {
		s.handlePaddle(paddleID, paddle, input)
	}
	s.updateProjectiles(deltaTime)
}

func (s *GunSystem) handlePaddle(paddleID types.EntityID, paddle *component.Paddle, input GunInput) {
	mode, ok := s.ecs.PaddleModes[paddleID]
	if !ok {
		return
	}

	if input.ToggleCapture && mode.Kind != component.PaddleCaptured {
		if mode.Kind == component.PaddleReflect {
			mode.Kind = component.PaddleCapture
		} else {
			mode.Kind = component.PaddleReflect
		}
	}

	if !input.Fire {
		return
	}

	// Выстрел при удерживаемом мяче выпускает мяч, а не снаряд
	if mode.Kind == component.PaddleCaptured {
		s.releaseBall(paddle, mode)
		return
	}

	if CooldownActive(s.ecs, paddleID, component.CooldownFire) {
		return
	}

	ammo, ok := s.ecs.PaddleAmmos[paddleID]
	if !ok {
		return
	}
	if ammo.Ammo() == 0 {
		// пустой магазин: щёлкаем тряской, но не чаще раза в секунду
		if !CooldownActive(s.ecs, paddleID, component.CooldownNoAmmoShake) {
			s.shake.AddTrauma(config.NoAmmoTrauma)
			ArmCooldown(s.ecs, paddleID, component.CooldownNoAmmoShake, config.NoAmmoCooldown)
		}
		return
	}

	ammo.Offset(-1)
	s.spawnProjectile(paddle)
	s.shake.AddTrauma(config.FireTrauma)
	ArmCooldown(s.ecs, paddleID, component.CooldownFire, config.FireCooldown)
}

// releaseBall выпускает пойманный мяч по записанному углу выстрела
func (s *GunSystem) releaseBall(paddle *component.Paddle, mode *component.PaddleMode) {
	ballID := mode.BallID
	mode.Kind = component.PaddleReflect
	mode.BallID = 0

	vel, ok := s.ecs.Velocities[ballID]
	if !ok {
		return
	}
	delete(s.ecs.Parents, ballID)

	outward := geometry.FromAngle(paddle.Rotation)
	vel.Dir = outward.Scale(-1).Rotate(mode.ShootRotation)
	vel.Speed = geometry.Clamp(vel.Speed*config.PaddleSpeedMult, config.BallBaseSpeed, config.BallMaxSpeed)

	// мяч стартует вплотную к ракетке, даём ему выйти из капсулы
	if ball, ok := s.ecs.Balls[ballID]; ok {
		ball.LastReflectionTime = s.ecs.GameTime + config.PaddleDebounce
	}
	paddle.LastHitTime = s.ecs.GameTime
	s.dispatcher.Dispatch(event.Event{Type: event.BallReflected, Data: ballID})
}

func (s *GunSystem) spawnProjectile(paddle *component.Paddle) {
	outward := geometry.FromAngle(paddle.Rotation)
	at := PaddleWorld(paddle, geometry.V(config.BarrelOffset, 0))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Velocities[id] = &component.Velocity{Dir: outward, Speed: config.ProjectileSpeed}
	s.ecs.Projectiles[id] = &component.Projectile{
		Width:    config.ProjectileWidth,
		Height:   config.ProjectileHeight,
		Rotation: paddle.Rotation,
	}
}

// updateProjectiles ведёт снаряды сквозь врагов и гасит улетевшие за поле
func (s *GunSystem) updateProjectiles(deltaTime float64) {
	bound := config.GameSize/2 + config.OutOfBoundsMargin
	for id, proj := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		origin := pos.Vec()
		if maxAbs(origin.X, origin.Y) > bound {
			s.ecs.QueueRemove(id)
			s.dispatcher.Dispatch(event.Event{Type: event.ProjectileDespawned, Data: id})
			continue
		}
		hitID, contact, ok := s.firstEnemyHit(origin, proj, vel, deltaTime)
		if !ok {
			continue
		}
		s.ecs.QueueRemove(hitID)
		s.ecs.QueueRemove(id)
		spawnEffect(s.ecs, component.EffectEnemyBurst, contact.Point, 0, config.EnemyRadius*1.5)
		s.shake.AddTrauma(config.EnemyTrauma)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: hitID})
		s.dispatcher.Dispatch(event.Event{Type: event.ProjectileDespawned, Data: id})
	}
}

func (s *GunSystem) firstEnemyHit(origin geometry.Vec2, proj *component.Projectile, vel *component.Velocity, deltaTime float64) (types.EntityID, geometry.Contact, bool) {
	maxDist := vel.Speed * sweepSlack * deltaTime

	type hit struct {
		id      types.EntityID
		contact geometry.Contact
	}
	var hits []hit
	for eid, enemy := range s.ecs.Enemies {
		if s.ecs.Removed(eid) {
			continue
		}
		epos, ok := s.ecs.Positions[eid]
		if !ok {
			continue
		}
		contact, ok := geometry.SweepRectCircle(
			origin, proj.Width/2, proj.Height/2, proj.Rotation,
			vel.Dir, maxDist, epos.Vec(), enemy.Radius,
		)
		if !ok {
			continue
		}
		hits = append(hits, hit{id: eid, contact: contact})
	}
	if len(hits) == 0 {
		return 0, geometry.Contact{}, false
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].contact.Distance < hits[j].contact.Distance })
	return hits[0].id, hits[0].contact, true
}
