package util

import (
	"sort"
	"strings"

	"github.com/fogleman/ease"
	"github.com/matt-g-everett/ledmotion/motion"
	"github.com/pkg/errors"
	gease "github.com/tanema/gween/ease"
)

const gweenPrefix = "gween:"

var easings = map[string]motion.EasingFunc{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
}

var tweens = map[string]gease.TweenFunc{
	"linear":       gease.Linear,
	"inquad":       gease.InQuad,
	"outquad":      gease.OutQuad,
	"inoutquad":    gease.InOutQuad,
	"outinquad":    gease.OutInQuad,
	"incubic":      gease.InCubic,
	"outcubic":     gease.OutCubic,
	"inoutcubic":   gease.InOutCubic,
	"outincubic":   gease.OutInCubic,
	"inquart":      gease.InQuart,
	"outquart":     gease.OutQuart,
	"inoutquart":   gease.InOutQuart,
	"outinquart":   gease.OutInQuart,
	"inquint":      gease.InQuint,
	"outquint":     gease.OutQuint,
	"inoutquint":   gease.InOutQuint,
	"outinquint":   gease.OutInQuint,
	"insine":       gease.InSine,
	"outsine":      gease.OutSine,
	"inoutsine":    gease.InOutSine,
	"outinsine":    gease.OutInSine,
	"inexpo":       gease.InExpo,
	"outexpo":      gease.OutExpo,
	"inoutexpo":    gease.InOutExpo,
	"outinexpo":    gease.OutInExpo,
	"incirc":       gease.InCirc,
	"outcirc":      gease.OutCirc,
	"inoutcirc":    gease.InOutCirc,
	"outincirc":    gease.OutInCirc,
	"inelastic":    gease.InElastic,
	"outelastic":   gease.OutElastic,
	"inoutelastic": gease.InOutElastic,
	"outinelastic": gease.OutInElastic,
	"inback":       gease.InBack,
	"outback":      gease.OutBack,
	"inoutback":    gease.InOutBack,
	"outinback":    gease.OutInBack,
	"inbounce":     gease.InBounce,
	"outbounce":    gease.OutBounce,
	"inoutbounce":  gease.InOutBounce,
	"outinbounce":  gease.OutInBounce,
}

// FromTween adapts a gween tween function to a normalised easing function.
func FromTween(fn gease.TweenFunc) motion.EasingFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Easing looks up an easing function by name, ignoring case. Names prefixed
// with "gween:" come from the gween catalogue. An empty name is linear.
func Easing(name string) (motion.EasingFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ease.Linear, nil
	}

	if strings.HasPrefix(key, gweenPrefix) {
		fn, ok := tweens[strings.TrimPrefix(key, gweenPrefix)]
		if !ok {
			return nil, errors.Errorf("unknown gween easing %q", name)
		}
		return FromTween(fn), nil
	}

	fn, ok := easings[key]
	if !ok {
		return nil, errors.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames lists every name Easing accepts.
func EasingNames() []string {
	names := make([]string, 0, len(easings)+len(tweens))
	for name := range easings {
		names = append(names, name)
	}
	for name := range tweens {
		names = append(names, gweenPrefix+name)
	}
	sort.Strings(names)
	return names
}
