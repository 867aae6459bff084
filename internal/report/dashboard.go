package report

import (
	"fmt"

	"asset-inventory/internal/domain"
)

type Summary struct {
	Total          int `json:"total"`
	Inventoried    int `json:"inventoried"`
	NotInventoried int `json:"notInventoried"`
	Active         int `json:"active"`
	Inactive       int `json:"inactive"`
	WrittenOff     int `json:"writtenOff"`
}

func Summarize(assets []domain.Asset) Summary {
	s := Summary{Total: len(assets)}
	for _, a := range assets {
		if a.Inventoried {
			s.Inventoried++
		}
		switch a.Status {
		case domain.StatusActive:
			s.Active++
		case domain.StatusInactive:
			s.Inactive++
		case domain.StatusWrittenOff:
			s.WrittenOff++
		}
	}
	s.NotInventoried = s.Total - s.Inventoried
	return s
}

type LocationTally struct {
	Code        int    `json:"cod_local"`
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Inventoried int    `json:"inventoried"`
}

// TallyByLocation 只统计资产中实际出现的位置（按首次出现顺序），
// 没有资产的位置即使是启用状态也不出现。
func TallyByLocation(assets []domain.Asset, locations []domain.Location) []LocationTally {
	names := make(map[int]string, len(locations))
	for _, l := range locations {
		if _, ok := names[l.Code]; !ok {
			names[l.Code] = l.Description
		}
	}

	idx := map[int]int{}
	out := []LocationTally{}
	for _, a := range assets {
		i, ok := idx[a.LocationCode]
		if !ok {
			name, known := names[a.LocationCode]
			if !known {
				name = fmt.Sprintf("Local %d", a.LocationCode)
			}
			i = len(out)
			idx[a.LocationCode] = i
			out = append(out, LocationTally{Code: a.LocationCode, Name: name})
		}
		out[i].Total++
		if a.Inventoried {
			out[i].Inventoried++
		}
	}
	return out
}
