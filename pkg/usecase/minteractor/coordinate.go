// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"

// convertUnityVectorToPmx は左手系ベクトルをYZ平面で反転し、倍率を掛ける。
func convertUnityVectorToPmx(v mmath.Vec3, scale float64) mmath.Vec3 {
	return mmath.NewVec3(-v.X*scale, v.Y*scale, v.Z*scale)
}

// convertUnityQuaternionToPmx はYZ平面反転に合わせて回転を変換する。
func convertUnityQuaternionToPmx(q mmath.Quaternion) mmath.Quaternion {
	return mmath.NewQuaternion(q.V[0], -q.V[1], -q.V[2], q.W)
}
