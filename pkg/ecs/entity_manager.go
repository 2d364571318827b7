// Package ecs 提供草图使用的最小实体-组件存储
//
// 每个网格单元（石块）是一个实体，网格坐标与动画状态作为组件挂载在实体上，
// 系统（pkg/systems）通过组件类型查询实体并就地修改组件数据。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 实体ID按创建顺序单调递增，查询结果按ID排序，因此网格按行优先创建后查询顺序也是行优先。
// 非并发安全：所有调用都发生在模拟线程上。
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]interface{}
}

// NewEntityManager 创建一个空的 EntityManager
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
	}
}

// CreateEntity 创建新实体并返回其ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// AddComponent 为实体挂载组件，同类型组件会被替换
//
// 返回：
//   - bool: 实体不存在时返回 false
func (em *EntityManager) AddComponent(id EntityID, component interface{}) bool {
	compMap, exists := em.components[id]
	if !exists {
		return false
	}
	compMap[reflect.TypeOf(component)] = component
	return true
}

// GetComponent 按反射类型获取实体组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	compMap, exists := em.components[id]
	if !exists {
		return nil, false
	}
	comp, found := compMap[componentType]
	return comp, found
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体
//
// 结果按实体ID升序排列，保证多次查询顺序一致。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
