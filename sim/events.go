package sim

// EventType names a notification the world raises for the host. The world
// never acts on its own events; the host drains them after each Step.
type EventType string

const (
	EventAreaEntered         EventType = "area_entered"
	EventTransitionRequested EventType = "transition_requested"
	EventQuestProgress       EventType = "quest_progress"
	EventQuestCompleted      EventType = "quest_completed"
	EventActorHealth         EventType = "actor_health"
	EventActorDefeated       EventType = "actor_defeated"
	EventHostileKilled       EventType = "hostile_killed"
	EventNotice              EventType = "notice"
)

// Event is one queued notification.
type Event struct {
	Type EventType
	Data any
}

// AreaEntered reports that a room finished spawning.
type AreaEntered struct {
	Room string
}

// TransitionRequested asks the host to move the run to another room. The
// world itself never switches rooms mid-tick.
type TransitionRequested struct {
	Room string
	Door string
}

// QuestProgress carries the bounty counter after a qualifying kill.
type QuestProgress struct {
	Current int
	Target  int
}

// ActorHealth carries the actor's hit points after they changed.
type ActorHealth struct {
	HP    int
	MaxHP int
}

// HostileKilled reports a confirmed kill and the score it granted.
type HostileKilled struct {
	Name  string
	Score int
}

// Notice is a transient line of player-facing text.
type Notice struct {
	Text string
}

// EventQueue accumulates events during a tick.
type EventQueue struct {
	items []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, e)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
