package config

import "sort"

type Material struct {
	Name        string
	VolumicMass float64 // kg/m³
	Description string
}

var Materials = map[string]*Material{
	"steel":        {Name: "steel", VolumicMass: 7850, Description: "plain carbon music wire"},
	"stainless":    {Name: "stainless", VolumicMass: 8000, Description: "stainless steel wire"},
	"nylon":        {Name: "nylon", VolumicMass: 1140, Description: "nylon monofilament"},
	"fluorocarbon": {Name: "fluorocarbon", VolumicMass: 1780, Description: "PVDF monofilament"},
	"gut":          {Name: "gut", VolumicMass: 1300, Description: "sheep gut"},
	"brass":        {Name: "brass", VolumicMass: 8500, Description: "yellow brass wire"},
	"bronze":       {Name: "bronze", VolumicMass: 8800, Description: "phosphor bronze wire"},
	"copper":       {Name: "copper", VolumicMass: 8960, Description: "copper wire"},
	"silver":       {Name: "silver", VolumicMass: 10490, Description: "silver wire"},
	"titanium":     {Name: "titanium", VolumicMass: 4500, Description: "titanium wire"},
}

func GetMaterial(name string) *Material {
	m, ok := Materials[name]
	if !ok {
		return nil
	}
	return m
}

func ListMaterials() []string {
	names := make([]string, 0, len(Materials))
	for name := range Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

