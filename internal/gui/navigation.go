package gui

// onPrevious shows the previous card, wrapping to the last one
func (a *Application) onPrevious() {
	a.session.Previous()
}

// onNext shows the next card, wrapping to the first one
func (a *Application) onNext() {
	a.session.Next()
}

// onFlip toggles between question and answer
func (a *Application) onFlip() {
	a.session.Flip()
}

// onManage opens the card manager, or focuses it when already open
func (a *Application) onManage() {
	if a.manager != nil {
		a.manager.window.RequestFocus()
		return
	}

	m := newManagerWindow(a)
	m.window.SetOnClosed(func() {
		m.close()
		a.manager = nil
	})
	a.manager = m
	m.window.Show()
}
