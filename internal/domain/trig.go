package domain

import (
	"fmt"
	"math"
)

const radiansPerDegree = math.Pi / 180

func sind(deg float64) float64 { return math.Sin(deg * radiansPerDegree) }
func cosd(deg float64) float64 { return math.Cos(deg * radiansPerDegree) }
func tand(deg float64) float64 { return math.Tan(deg * radiansPerDegree) }
func cotd(deg float64) float64 { return 1 / tand(deg) }

func asind(x float64) float64 {
	if x < -1 || x > 1 {
		panic(fmt.Sprintf("domain: asind argument %v outside [-1,1]", x))
	}
	return math.Asin(x) / radiansPerDegree
}

func acosd(x float64) float64 {
	if x < -1 || x > 1 {
		panic(fmt.Sprintf("domain: acosd argument %v outside [-1,1]", x))
	}
	return math.Acos(x) / radiansPerDegree
}

func atan2d(y, x float64) float64 { return math.Atan2(y, x) / radiansPerDegree }
