package prompt

import "github.com/hidden-1992/ai-healthy-menu/internal/models"

// Known scene descriptions, keyed by scene id.
var sceneDescriptions = map[string]string{
	"cold":     "感冒发烧，身体虚弱，需要恢复体力",
	"drunk":    "刚刚饮酒，需要解酒护肝",
	"exercise": "刚刚运动完，需要补充能量和蛋白质",
	"period":   "女性生理期，需要温补调理",
	"tired":    "疲劳困倦，需要提神醒脑",
	"stomach":  "肠胃不适，需要养胃调理",
}

// SceneDescription resolves the scene id to its fixed description, falling
// back to the caller-supplied desc for ids this build does not know.
func SceneDescription(scene models.Scene) string {
	if desc, ok := sceneDescriptions[scene.ID]; ok {
		return desc
	}
	return scene.Desc
}
