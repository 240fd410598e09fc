// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"
)

const (
	fkVisitNone = iota
	fkVisitActive
	fkVisitDone
)

// computeWorldMatrices は親index配列とローカル行列からワールド行列を求める。
// 親は子より後ろにあってもよいが、親子関係が循環している場合は構造エラーを返す。
func computeWorldMatrices(parents []int, locals []mmath.Mat4) ([]mmath.Mat4, error) {
	count := len(locals)
	worlds := make([]mmath.Mat4, count)
	states := make([]int, count)

	var visit func(index int) error
	visit = func(index int) error {
		switch states[index] {
		case fkVisitDone:
			return nil
		case fkVisitActive:
			return merrors.NewStructuralError(
				"順運動学",
				"親子関係が循環していないこと",
				fmt.Errorf("index=%d", index),
			)
		}
		states[index] = fkVisitActive
		parentIndex := -1
		if index < len(parents) {
			parentIndex = parents[index]
		}
		if parentIndex >= 0 && parentIndex < count {
			if err := visit(parentIndex); err != nil {
				return err
			}
			worlds[index] = worlds[parentIndex].Muled(locals[index])
		} else {
			worlds[index] = locals[index]
		}
		states[index] = fkVisitDone
		return nil
	}

	for i := 0; i < count; i++ {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return worlds, nil
}

// collectChildrenByParent は親indexごとの子index一覧をindex順で返す。
func collectChildrenByParent(parents []int) [][]int {
	children := make([][]int, len(parents))
	for i, parentIndex := range parents {
		if parentIndex < 0 || parentIndex >= len(parents) {
			continue
		}
		children[parentIndex] = append(children[parentIndex], i)
	}
	return children
}
