package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
)

// Display labels for profile codes. Unknown codes pass through unchanged so
// tags added by newer clients still render.
var healthTagLabels = map[string]string{
	"hypertension":   "高血压",
	"hyperlipidemia": "高血脂",
	"diabetes":       "糖尿病",
	"gout":           "痛风",
}

var allergenLabels = map[string]string{
	"seafood": "海鲜",
	"peanut":  "花生",
	"milk":    "牛奶",
	"egg":     "鸡蛋",
	"wheat":   "小麦",
	"soy":     "大豆",
}

func HealthTagLabel(code string) string {
	if label, ok := healthTagLabels[code]; ok {
		return label
	}
	return code
}

func AllergenLabel(code string) string {
	if label, ok := allergenLabels[code]; ok {
		return label
	}
	return code
}

func labelList(codes []string, label func(string) string) string {
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, label(code))
	}
	return strings.Join(labels, "、")
}

// FormatProfileContext renders the profile as a single prompt fragment:
// gender, then age/height/weight when set, then health status and allergens.
// A nil profile renders as the empty string.
func FormatProfileContext(p *models.UserProfile) string {
	if p == nil {
		return ""
	}

	gender := "女"
	if p.Gender == "male" {
		gender = "男"
	}
	parts := []string{"性别: " + gender}

	if p.Age > 0 {
		parts = append(parts, fmt.Sprintf("年龄: %d岁", p.Age))
	}
	if p.Height > 0 {
		parts = append(parts, "身高: "+formatNumber(p.Height)+"cm")
	}
	if p.Weight > 0 {
		parts = append(parts, "体重: "+formatNumber(p.Weight)+"kg")
	}
	if len(p.HealthTags) > 0 {
		parts = append(parts, "健康状况: "+labelList(p.HealthTags, HealthTagLabel))
	}
	if len(p.Allergens) > 0 {
		parts = append(parts, "过敏源: "+labelList(p.Allergens, AllergenLabel))
	}

	return strings.Join(parts, "，")
}

// formatNumber drops the trailing ".0" so 175 renders as "175", not "175.0".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
