// Package prompt assembles the Chinese-language instructions sent to the
// multimodal model. Builders are pure functions of the task payload and the
// optional user profile; every prompt ends with a "JSON only" directive and
// the downstream extractor bears the burden of recovering the payload.
package prompt

import (
	"fmt"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
)

func profileSection(p *models.UserProfile) string {
	context := FormatProfileContext(p)
	if context == "" {
		return ""
	}
	return "【用户健康档案】" + context
}

// healthConstraint forbids recommending dishes unsuitable for the user's
// conditions and requires a warning when a risky ingredient is detected.
func healthConstraint(p *models.UserProfile) string {
	if p == nil || len(p.HealthTags) == 0 {
		return ""
	}
	return fmt.Sprintf("\n【健康过滤要求】用户有以下健康问题：%s。推荐菜谱时必须考虑这些健康限制，避免推荐不适合的菜品。如果检测到可能不适合的食材，需要在 nutritionTips.warning 中给出提醒。",
		labelList(p.HealthTags, HealthTagLabel))
}

// allergenConstraint requires an explicit allergy warning and forbids recipes
// containing the allergen.
func allergenConstraint(p *models.UserProfile) string {
	if p == nil || len(p.Allergens) == 0 {
		return ""
	}
	return fmt.Sprintf("\n【过敏源警告】用户对以下食物过敏：%s。如果识别到这些食材，必须在 nutritionTips.warning 中强调过敏风险，且不要推荐含有这些食材的菜谱。",
		labelList(p.Allergens, AllergenLabel))
}

// Ingredient builds the ingredient-recognition prompt: identify everything in
// the photo, recommend 3-4 home-style recipes with steps and nutrition.
func Ingredient(p *models.UserProfile) string {
	return fmt.Sprintf(`你是一个专业的中国家庭食材识别专家和营养师。请仔细分析这张图片，识别出图片中所有的食物和食材。

%s%s%s

【重要】所有输出内容必须使用简体中文。

请严格按照以下JSON格式返回结果：
{
    "ingredients": [
        {"name": "食材中文名称", "icon": "对应emoji", "confidence": "高/中/低", "proportion": "大/中/小"}
    ],
    "recipes": [
        {
            "name": "中文菜名",
            "icon": "菜品emoji",
            "time": "XX分钟",
            "difficulty": "easy/medium/hard",
            "difficultyText": "简单/中等/困难",
            "ingredients": ["食材1 适量", "食材2 适量"],
            "steps": ["第一步的中文描述", "第二步的中文描述"],
            "nutrition": {"protein": 20, "carbs": 15, "fat": 10, "calories": 250},
            "healthNote": "针对用户健康状况的特别说明（如有）"
        }
    ],
    "nutritionTips": {
        "balance": "营养均衡建议",
        "cooking": "烹饪建议",
        "warning": "注意事项（包括过敏提醒、健康限制提醒等）"
    }
}

要求：
1. 食材列表按识别精确度和图片占比从高到低排序
2. 根据识别到的食材，推荐3-4道中国家常菜
3. 每道菜提供详细的中文烹饪步骤（5-8步）
4. 每道菜的nutrition字段必须给出合理估算值
5. 如果用户有健康问题，在 healthNote 中说明该菜品是否适合
6. 请只返回JSON，不要有其他内容。`,
		profileSection(p), healthConstraint(p), allergenConstraint(p))
}

// Dish builds the prepared-dish estimation prompt: a single record with
// weight, macros and a traffic-light suitability level for this user.
func Dish(p *models.UserProfile) string {
	return fmt.Sprintf(`你是一个专业的营养师。请分析这张食物图片，识别菜品并估算营养成分。

%s

请严格按照以下JSON格式返回结果：
{
    "name": "菜品中文名称",
    "icon": "菜品emoji",
    "weight": 300,
    "calories": 450,
    "protein": 25,
    "carbs": 30,
    "fat": 20,
    "healthLevel": "green/yellow/red",
    "advice": "针对用户健康状况的个性化建议"
}

说明：
- weight: 预估重量（克）
- calories: 预估热量（千卡）
- protein/carbs/fat: 蛋白质/碳水/脂肪（克）
- healthLevel:
  - green(🟢推荐): 健康、低热量、适合用户
  - yellow(🟡适量): 一般、需要控制摄入量
  - red(🔴警告): 高热量/高糖/高油/高嘌呤等，不太适合用户健康状况
- advice: 根据用户健康档案给出的个性化建议

请只返回JSON，不要有其他内容。`, profileSection(p))
}

// Scene-flavoured constraint clauses: same semantics as the ingredient ones
// but phrased against the recommended/forbidden lists instead of recipes.
func sceneHealthConstraint(p *models.UserProfile) string {
	if p == nil || len(p.HealthTags) == 0 {
		return ""
	}
	return fmt.Sprintf("\n【健康过滤要求】用户有以下健康问题：%s。推荐食物时必须考虑这些健康限制，不适合的食物要列入禁忌清单。",
		labelList(p.HealthTags, HealthTagLabel))
}

func sceneAllergenConstraint(p *models.UserProfile) string {
	if p == nil || len(p.Allergens) == 0 {
		return ""
	}
	return fmt.Sprintf("\n【过敏源警告】用户对以下食物过敏：%s。不要推荐含有这些过敏源的食物，并在 tips 中强调过敏风险。",
		labelList(p.Allergens, AllergenLabel))
}

// Scene builds the scenario-recommendation prompt: 5 recommended and 3
// forbidden foods for the user's current state, plus combined tips.
func Scene(scene models.Scene, p *models.UserProfile) string {
	return fmt.Sprintf(`你是一个专业的营养师和中医食疗专家。用户当前状态：%s（%s）

%s%s%s

请根据用户当前状态和健康档案，给出饮食建议。

请严格按照以下JSON格式返回结果：
{
    "recommended": [
        {"name": "推荐食物名称", "icon": "食物emoji", "reason": "推荐理由（20字以内）"},
        {"name": "推荐食物名称", "icon": "食物emoji", "reason": "推荐理由"},
        {"name": "推荐食物名称", "icon": "食物emoji", "reason": "推荐理由"},
        {"name": "推荐食物名称", "icon": "食物emoji", "reason": "推荐理由"},
        {"name": "推荐食物名称", "icon": "食物emoji", "reason": "推荐理由"}
    ],
    "forbidden": [
        {"name": "禁忌食物名称", "icon": "食物emoji", "reason": "禁忌理由（20字以内）"},
        {"name": "禁忌食物名称", "icon": "食物emoji", "reason": "禁忌理由"},
        {"name": "禁忌食物名称", "icon": "食物emoji", "reason": "禁忌理由"}
    ],
    "tips": "综合建议（50-100字，包括饮食建议和生活建议）"
}

要求：
1. 推荐5种适合当前状态的食物
2. 列出3种应该避免的食物
3. 如果用户有健康问题（如高血压、糖尿病等），推荐时必须考虑这些限制
4. 给出实用的综合建议
5. 请只返回JSON，不要有其他内容。`,
		scene.Label, SceneDescription(scene),
		profileSection(p), sceneHealthConstraint(p), sceneAllergenConstraint(p))
}
