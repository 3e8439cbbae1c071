package antiraid

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// panelSession is the state of one open configuration panel: who may press
// its buttons, the interaction handle used to re-render it, and the timer
// that closes it.
type panelSession struct {
	guildID     string
	ownerID     string
	interaction *discordgo.Interaction
	timer       *time.Timer
}

type sessionManager struct {
	mu       sync.Mutex
	sessions map[string]*panelSession
}

var sessions = &sessionManager{sessions: make(map[string]*panelSession)}

// open registers a panel session for the guild, replacing any previous one
// and cancelling its close timer. onExpire runs once when the window
// elapses.
func (m *sessionManager) open(guildID, ownerID string, interaction *discordgo.Interaction, timeout time.Duration, onExpire func(*panelSession)) *panelSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sessions[guildID]; ok {
		old.timer.Stop()
	}

	sess := &panelSession{
		guildID:     guildID,
		ownerID:     ownerID,
		interaction: interaction,
	}
	sess.timer = time.AfterFunc(timeout, func() {
		m.close(guildID, sess)
		onExpire(sess)
	})
	m.sessions[guildID] = sess
	return sess
}

// get returns the open session for the guild, or nil.
func (m *sessionManager) get(guildID string) *panelSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[guildID]
}

// close removes sess if it is still the registered session for the guild.
// A session replaced by a newer panel must not remove its successor.
func (m *sessionManager) close(guildID string, sess *panelSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.sessions[guildID]; ok && cur == sess {
		delete(m.sessions, guildID)
	}
}
