package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
)

func TestFormatProfileContext_NilProfile(t *testing.T) {
	assert.Equal(t, "", FormatProfileContext(nil))
}

func TestFormatProfileContext_GenderOnly(t *testing.T) {
	// Only gender set: exactly the gender fragment, no trailing separator.
	assert.Equal(t, "性别: 男", FormatProfileContext(&models.UserProfile{Gender: "male"}))
	assert.Equal(t, "性别: 女", FormatProfileContext(&models.UserProfile{Gender: "female"}))
}

func TestFormatProfileContext_FullProfileOrdering(t *testing.T) {
	p := &models.UserProfile{
		Gender:     "female",
		Age:        28,
		Height:     162.5,
		Weight:     55,
		HealthTags: []string{"diabetes", "gout"},
		Allergens:  []string{"peanut"},
	}

	assert.Equal(t,
		"性别: 女，年龄: 28岁，身高: 162.5cm，体重: 55kg，健康状况: 糖尿病、痛风，过敏源: 花生",
		FormatProfileContext(p))
}

func TestFormatProfileContext_SkipsZeroNumericFields(t *testing.T) {
	p := &models.UserProfile{Gender: "male", Weight: 70}
	assert.Equal(t, "性别: 男，体重: 70kg", FormatProfileContext(p))
}

func TestLabels_UnknownCodesPassThrough(t *testing.T) {
	assert.Equal(t, "高血压", HealthTagLabel("hypertension"))
	assert.Equal(t, "anemia", HealthTagLabel("anemia"))
	assert.Equal(t, "牛奶", AllergenLabel("milk"))
	assert.Equal(t, "sesame", AllergenLabel("sesame"))
}
