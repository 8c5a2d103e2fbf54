package apierror

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// Help generates the help output listing every environment variable read
// by NewHTTP.
func Help() string {
	responderGrp, _ := settings.GroupFromComponent(&ResponderComponent{})
	runtimeGrp, _ := settings.GroupFromComponent(&runhttp.Component{})
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   settingsPrefix,
		GroupValues: []settings.Group{responderGrp, runtimeGrp},
	}})
}
