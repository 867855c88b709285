// Package snapshottest 提供跨包测试共用的快照样本。
package snapshottest

// SampleJSON 覆盖了上游常见的混合编码：
// - 数字与数字字符串混用（坐标 "-12" / -12，role "3"，tribeId 2）
// - 玩家 13 的王国 99 不存在，玩家 14 没有村庄
// - 各类地块：被占、绿洲、无资源、空地、无王国影响
const SampleJSON = `{
  "response": {
    "gameworld": {
      "name": "com3",
      "startTime": "1700000000",
      "speed": 1,
      "speedTroops": "1",
      "lastUpdateTime": 1700003600,
      "date": "1700003600",
      "version": "1.0"
    },
    "kingdoms": [
      {"kingdomId": "1", "kingdomTag": "ALPHA", "creationTime": 1700000100, "victoryPoints": "100"},
      {"kingdomId": 2, "kingdomTag": "BETA", "creationTime": "1700000200", "victoryPoints": 50}
    ],
    "players": [
      {
        "playerId": "10", "name": "alice", "tribeId": "1", "kingdomId": "1",
        "treasures": 12, "role": 1, "externalLoginToken": "tok-a",
        "villages": [
          {"villageId": 100, "x": "1", "y": 2, "population": "500", "name": "Alice Main", "isMainVillage": true, "isCity": true}
        ]
      },
      {
        "playerId": 11, "name": "bob", "tribeId": 2, "kingdomId": 1,
        "treasures": "0", "role": "3", "externalLoginToken": "tok-b",
        "villages": [
          {"villageId": "101", "x": "-12", "y": -12, "population": 120, "name": "Bob One", "isMainVillage": true, "isCity": false},
          {"villageId": 102, "x": 3, "y": "-4", "population": "80", "name": "Bob Two", "isMainVillage": false, "isCity": false}
        ]
      },
      {
        "playerId": 12, "name": "carol", "tribeId": "3", "kingdomId": "2",
        "treasures": 3, "role": 0, "externalLoginToken": "tok-c",
        "villages": [
          {"villageId": 103, "x": 5, "y": 5, "population": 300, "name": "Carol Keep", "isMainVillage": true, "isCity": false}
        ]
      },
      {
        "playerId": 13, "name": "dave", "tribeId": "1", "kingdomId": "99",
        "treasures": 0, "role": 0, "externalLoginToken": "tok-d",
        "villages": [
          {"villageId": 104, "x": -1, "y": -1, "population": 40, "name": "Dave Camp", "isMainVillage": true, "isCity": false}
        ]
      },
      {
        "playerId": 14, "name": "erin", "tribeId": "2", "kingdomId": 0,
        "treasures": 0, "role": 2, "externalLoginToken": "tok-e",
        "villages": []
      }
    ],
    "map": {
      "radius": "10",
      "landscapes": {"1": "forest", "2": "lake"},
      "cells": [
        {"id": 1, "x": 1, "y": "2", "resType": "3", "oasis": "0", "landscape": 1, "kingdomId": "1"},
        {"id": 2, "x": "-12", "y": "-12", "resType": "4", "oasis": 0, "landscape": "1", "kingdomId": 1},
        {"id": 3, "x": -1, "y": -1, "resType": "3", "oasis": "0", "landscape": 1, "kingdomId": 0},
        {"id": 4, "x": 0, "y": 0, "resType": "0", "oasis": "1", "landscape": 2, "kingdomId": 1},
        {"id": 5, "x": 2, "y": 2, "resType": "3", "oasis": "1", "landscape": 2, "kingdomId": "2"},
        {"id": 6, "x": 7, "y": 7, "resType": 4, "oasis": "0", "landscape": 1, "kingdomId": 7},
        {"id": 7, "x": 8, "y": 8, "resType": "3", "oasis": "0", "landscape": 1, "kingdomId": 2}
      ]
    }
  }
}`
