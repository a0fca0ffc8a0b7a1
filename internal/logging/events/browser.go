package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type PrivacyTracer struct{}

type ThemeTracer struct{}

type RemoteTracer struct{}

var (
	Privacy = PrivacyTracer{}
	Theme   = ThemeTracer{}
	Remote  = RemoteTracer{}
)

func (PrivacyTracer) Changed(window string, private bool) {
	logging.Trace("privacy.changed", map[string]interface{}{"window": window, "private": private})
}

func (ThemeTracer) Set(window, setting string, value interface{}) {
	logging.Trace("theme.set", map[string]interface{}{"window": window, "setting": setting, "value": value})
}

func (ThemeTracer) Reload(path string) {
	logging.Trace("theme.reload", map[string]interface{}{"path": path})
}

func (RemoteTracer) Refresh(window string) {
	logging.Trace("remote.refresh", map[string]interface{}{"window": window})
}

func (RemoteTracer) Result(window string, clients int, reason string) {
	logging.Trace("remote.result", map[string]interface{}{"window": window, "clients": clients, "reason": reason})
}
