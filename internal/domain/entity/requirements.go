package entity

// BudgetLevelStandard 预算级别默认值
const BudgetLevelStandard = "standard"

// buildingTypes 已知建筑类型集合，提交的需求必须命中其一
var buildingTypes = []string{
	"residential_house",
	"apartment_complex",
	"office_building",
	"retail_store",
	"restaurant",
	"warehouse",
	"school",
	"hospital",
	"clinic",
	"hotel",
	"shopping_mall",
	"gym_fitness_center",
	"library",
	"community_center",
	"industrial_facility",
}

// BuildingTypes 返回全部已知建筑类型（副本）
func BuildingTypes() []string {
	out := make([]string, len(buildingTypes))
	copy(out, buildingTypes)
	return out
}

// IsKnownBuildingType 判断建筑类型是否在已知集合中
func IsKnownBuildingType(t string) bool {
	for _, bt := range buildingTypes {
		if bt == t {
			return true
		}
	}
	return false
}

// BuildingRequirements 建筑需求，提交后不可变
type BuildingRequirements struct {
	BuildingType    string   `json:"building_type"`
	TotalArea       float64  `json:"total_area"`
	Floors          int      `json:"floors"`
	Occupancy       string   `json:"occupancy"`
	SpecialFeatures []string `json:"special_features"`
	BudgetLevel     string   `json:"budget_level"`
}

// NewBuildingRequirements 创建建筑需求，预算级别为空时取默认值
func NewBuildingRequirements(buildingType string, totalArea float64, floors int, occupancy string, specialFeatures []string, budgetLevel string) *BuildingRequirements {
	if budgetLevel == "" {
		budgetLevel = BudgetLevelStandard
	}
	if specialFeatures == nil {
		specialFeatures = []string{}
	}
	return &BuildingRequirements{
		BuildingType:    buildingType,
		TotalArea:       totalArea,
		Floors:          floors,
		Occupancy:       occupancy,
		SpecialFeatures: specialFeatures,
		BudgetLevel:     budgetLevel,
	}
}
