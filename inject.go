package bouncy

// InjectClick queues a left click at the given NDC point. The event is
// consumed on the next Drain, exactly like real pointer input.
func (l *Loop) InjectClick(x, y float64) {
	l.Post(Click(Pt(x, y)))
}

// InjectKey queues a key press.
func (l *Loop) InjectKey(r rune) {
	l.Post(Key(r))
}

// InjectMenu queues a context menu command.
func (l *Loop) InjectMenu(c MenuCommand) {
	l.Post(Menu(c))
}

// InjectDirection queues a tuning stimulus.
func (l *Loop) InjectDirection(d Direction) {
	l.Post(DirectionInput(d))
}

// InjectPolygon queues a click for every vertex of p, in order.
func (l *Loop) InjectPolygon(p Polygon) {
	for _, pt := range p {
		l.Post(Click(pt))
	}
}

// InjectTicks queues n ticks.
func (l *Loop) InjectTicks(n int) {
	for i := 0; i < n; i++ {
		l.Post(Tick())
	}
}
