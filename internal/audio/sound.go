// internal/audio/sound.go
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-core-defense/internal/event"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager синтезирует короткие сигналы на игровые события.
// Реализует event.Listener: подписывается на события боя и играет блипы.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize поднимает динамик; без вызова менеджер молчит
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Disable выключает звук, не трогая динамик
func (sm *SoundManager) Disable() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = true
	sm.mixer.Clear()
}

// Cleanup глушит всё; beep не даёт закрыть динамик, чистим микшер
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// OnEvent играет блип, подходящий событию
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.BallReflected:
		sm.play(660, 70*time.Millisecond)
	case event.EnemyDestroyed:
		sm.play(880, 50*time.Millisecond)
	case event.CoreDamaged:
		sm.play(180, 250*time.Millisecond)
	case event.GameOver:
		sm.play(110, 700*time.Millisecond)
	}
}

func (sm *SoundManager) play(freq float64, duration time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}
	tone := newTone(freq, duration, sampleRate)
	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
}

// tone — синусоида с линейной атакой и затуханием по краям
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	edge     int // длина атаки и затухания в сэмплах
	rate     beep.SampleRate
}

func newTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	edge := total / 8
	if edge < 1 {
		edge = 1
	}
	return &tone{freq: freq, total: total, edge: edge, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}
		val := math.Sin(2 * math.Pi * t.phase)

		gain := 1.0
		if t.position < t.edge {
			gain = float64(t.position) / float64(t.edge)
		} else if left := t.total - t.position; left < t.edge {
			gain = float64(left) / float64(t.edge)
		}
		val *= gain * 0.4

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
