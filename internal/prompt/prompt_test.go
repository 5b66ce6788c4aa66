package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
)

func TestIngredient_ConstraintInjection(t *testing.T) {
	p := &models.UserProfile{
		Gender:     "male",
		HealthTags: []string{"diabetes"},
		Allergens:  []string{"peanut"},
	}
	text := Ingredient(p)

	assert.Contains(t, text, "【用户健康档案】")
	assert.Contains(t, text, "【健康过滤要求】")
	assert.Contains(t, text, "糖尿病")
	assert.Contains(t, text, "【过敏源警告】")
	assert.Contains(t, text, "花生")
}

func TestIngredient_NoProfileNoInjectedClauses(t *testing.T) {
	text := Ingredient(nil)

	assert.NotContains(t, text, "【用户健康档案】")
	assert.NotContains(t, text, "【健康过滤要求】")
	assert.NotContains(t, text, "【过敏源警告】")
}

func TestBuilders_AlwaysEndWithJSONOnlyDirective(t *testing.T) {
	scene := models.Scene{ID: "exercise", Label: "运动后"}
	prompts := map[string]string{
		"ingredient": Ingredient(nil),
		"dish":       Dish(&models.UserProfile{Gender: "female"}),
		"scene":      Scene(scene, nil),
	}
	for name, text := range prompts {
		if !strings.Contains(text, "请只返回JSON，不要有其他内容。") {
			t.Errorf("%s prompt is missing the JSON-only directive", name)
		}
	}
}

func TestDish_HealthLevelSemantics(t *testing.T) {
	text := Dish(nil)

	assert.Contains(t, text, "green/yellow/red")
	assert.Contains(t, text, "green(🟢推荐)")
	assert.Contains(t, text, "yellow(🟡适量)")
	assert.Contains(t, text, "red(🔴警告)")
}

func TestScene_KnownSceneUsesFixedDescription(t *testing.T) {
	text := Scene(models.Scene{ID: "drunk", Label: "喝酒后", Desc: "caller desc ignored"}, nil)

	assert.Contains(t, text, "刚刚饮酒，需要解酒护肝")
	assert.NotContains(t, text, "caller desc ignored")
}

func TestScene_UnknownSceneFallsBackToCallerDescription(t *testing.T) {
	text := Scene(models.Scene{ID: "jetlag", Label: "倒时差", Desc: "长途飞行后作息紊乱"}, nil)

	assert.Contains(t, text, "长途飞行后作息紊乱")
}

func TestScene_ConstraintInjection(t *testing.T) {
	p := &models.UserProfile{
		Gender:     "female",
		HealthTags: []string{"hypertension"},
		Allergens:  []string{"seafood"},
	}
	text := Scene(models.Scene{ID: "cold", Label: "感冒"}, p)

	assert.Contains(t, text, "【健康过滤要求】")
	assert.Contains(t, text, "高血压")
	assert.Contains(t, text, "【过敏源警告】")
	assert.Contains(t, text, "海鲜")
}
