// Package ui contains the Bubble Tea program that renders a window's tab tray.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, store notifications, backend events).
//   - Key presses turn into actions. The command bus dispatches them into the
//     redux store and reports back with a command.DispatchedMsg.
//   - Navigation helpers (internal/ui/navigation.go) rebuild the tab list
//     from the store and move the cursor. Filter helpers (internal/ui/input.go)
//     keep text entry isolated from the Bubble Tea event loop.
//
// State ownership:
//   - The store owns every screen state. The model never mutates tabs itself;
//     it only dispatches actions and re-reads TabsTrayState and TabsPanelState.
//   - Row state (cursor, filter, marks, viewport) lives in
//     internal/ui/state.Level.
//
// Background work:
//   - Tab operations finish on the coordinator's task group. The store
//     subscription wakes the model through stateChangedMsg so results show up
//     without polling.
//   - A backend.Watcher streams inactive-tab sweeps and preference reloads;
//     Update hands them to the data dispatcher which turns them into actions.
package ui
